package repository

import (
	"context"

	"agentcard/internal/domains/agent/model"
)

// Repository is the profile store. Implementations normalize slugs on both
// storage and lookup, so a stored slug is always already normalized.
type Repository interface {
	// Create fails with AGENT_SLUG_ALREADY_EXISTS when the slug is taken.
	Create(ctx context.Context, a *model.Agent) error
	// GetBySlug returns (nil, nil) when no record matches.
	GetBySlug(ctx context.Context, slug string) (*model.Agent, error)
	// List returns all records ordered by name ascending.
	List(ctx context.Context) ([]*model.Agent, error)
	// Update overwrites every field of the record; fails with
	// AGENT_NOT_FOUND when the slug is absent.
	Update(ctx context.Context, a *model.Agent) error
	// Delete is an idempotent no-op when the slug is absent.
	Delete(ctx context.Context, slug string) error
}
