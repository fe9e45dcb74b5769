package usecase

import (
	"context"
	"fmt"
	"strings"

	"card-consumption-assistant/internal/retrieval"
)

// Index validates the templates and writes them to the index.
func (uc *implUseCase) Index(ctx context.Context, input retrieval.IndexInput) (retrieval.IndexOutput, error) {
	if len(input.Documents) == 0 {
		return retrieval.IndexOutput{}, retrieval.ErrNoDocuments
	}
	for i, d := range input.Documents {
		if strings.TrimSpace(d.Content) == "" {
			return retrieval.IndexOutput{}, fmt.Errorf("document %d (%s): %w", i, d.ID, retrieval.ErrMissingContent)
		}
	}

	if err := uc.repo.EnsureCollection(ctx); err != nil {
		uc.l.Errorf(ctx, "retrieval.usecase.Index: repo.EnsureCollection: %v", err)
		return retrieval.IndexOutput{}, fmt.Errorf("ensure collection: %w", err)
	}

	if err := uc.repo.Upsert(ctx, input.Documents); err != nil {
		uc.l.Errorf(ctx, "retrieval.usecase.Index: repo.Upsert: %v", err)
		return retrieval.IndexOutput{}, fmt.Errorf("upsert templates: %w", err)
	}

	uc.l.Infof(ctx, "retrieval.usecase.Index: indexed %d templates", len(input.Documents))
	return retrieval.IndexOutput{Indexed: len(input.Documents)}, nil
}
