package model

import (
	"errors"
	"fmt"
	"net/http"
)

// AgentError is the domain error for the agent domain, carrying a stable
// code alongside the human-readable message.
type AgentError struct {
	Code    string
	Message string
	Err     error
}

func (e *AgentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AgentError) Unwrap() error {
	return e.Err
}

const (
	codeNotFound    = "AGENT_NOT_FOUND"
	codeSlugExists  = "AGENT_SLUG_ALREADY_EXISTS"
	codeInvalidForm = "AGENT_INVALID_FORM"
	codeStorage     = "AGENT_STORAGE_ERROR"
)

func NewAgentNotFound(slug string) *AgentError {
	return &AgentError{
		Code:    codeNotFound,
		Message: fmt.Sprintf("Agent '%s' not found", slug),
	}
}

func NewSlugAlreadyExists(slug string) *AgentError {
	return &AgentError{
		Code:    codeSlugExists,
		Message: fmt.Sprintf("An agent with slug '%s' already exists", slug),
	}
}

func NewInvalidForm(err error) *AgentError {
	return &AgentError{
		Code:    codeInvalidForm,
		Message: err.Error(),
		Err:     err,
	}
}

func NewStorageError(op string, err error) *AgentError {
	return &AgentError{
		Code:    codeStorage,
		Message: fmt.Sprintf("Failed to %s agent", op),
		Err:     err,
	}
}

func IsNotFound(err error) bool {
	var agentErr *AgentError
	return errors.As(err, &agentErr) && agentErr.Code == codeNotFound
}

func IsSlugAlreadyExists(err error) bool {
	var agentErr *AgentError
	return errors.As(err, &agentErr) && agentErr.Code == codeSlugExists
}

// IsValidationError covers the errors surfaced to the administrator as a
// client error: missing required fields and duplicate slugs.
func IsValidationError(err error) bool {
	var agentErr *AgentError
	if !errors.As(err, &agentErr) {
		return false
	}
	return agentErr.Code == codeInvalidForm || agentErr.Code == codeSlugExists
}

// HTTPStatus maps a domain error to the status code of the page rendered
// for it.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsNotFound(err):
		return http.StatusNotFound
	case IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage returns the text shown on the admin form for a failed
// operation.
func UserMessage(err error) string {
	var agentErr *AgentError
	if errors.As(err, &agentErr) {
		return agentErr.Message
	}
	return "Internal server error"
}
