package repository

import (
	"context"

	"card-consumption-assistant/internal/evaluation"
)

// Repository is the data store of the evaluation domain.
type Repository interface {
	// CreateEvaluation inserts e in its own transaction, rolled back on failure.
	CreateEvaluation(ctx context.Context, e evaluation.Evaluation) error
}
