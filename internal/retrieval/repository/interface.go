package repository

import (
	"context"

	"card-consumption-assistant/internal/model"
)

// VectorRepository is a similarity index over template documents.
type VectorRepository interface {
	// EnsureCollection creates the backing collection when it does not exist yet.
	EnsureCollection(ctx context.Context) error
	Upsert(ctx context.Context, docs []model.TemplateDocument) error
	// Search returns at most opt.Limit documents with their raw similarity.
	Search(ctx context.Context, opt SearchOptions) ([]model.CandidateDocument, error)
}
