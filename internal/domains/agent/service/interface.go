package service

import (
	"context"

	"agentcard/internal/domains/agent/model"
)

// Service orchestrates the administrative workflow: validation, slug
// uniqueness, file uploads and persistence.
type Service interface {
	List(ctx context.Context) ([]*model.Agent, error)
	// GetBySlug fails with AGENT_NOT_FOUND when the slug is unknown.
	GetBySlug(ctx context.Context, slug string) (*model.Agent, error)
	// Create validates required fields and slug uniqueness before any file
	// upload is attempted. A failed individual upload leaves that field
	// empty instead of aborting the operation.
	Create(ctx context.Context, form *model.AgentForm, files *model.AgentFiles) (*model.Agent, error)
	// Update preserves every stored file URL whose input was omitted; the
	// gallery is wholesale-replaced only when at least one new gallery file
	// was supplied. The slug is immutable and any submitted change to it is
	// ignored.
	Update(ctx context.Context, slug string, form *model.AgentForm, files *model.AgentFiles) (*model.Agent, error)
	// Delete fails with AGENT_NOT_FOUND when the slug is unknown; the
	// removal itself is immediate and unconditional.
	Delete(ctx context.Context, slug string) error
}
