package usecase

import (
	"card-consumption-assistant/internal/evaluation"
	"card-consumption-assistant/internal/evaluation/repository"
	"card-consumption-assistant/pkg/log"
)

// DefaultMaxAttempts is how many times an insert is tried before giving up.
const DefaultMaxAttempts = 3

type implUseCase struct {
	repo        repository.Repository
	l           log.Logger
	maxAttempts int
}

// New creates the evaluation UseCase. maxAttempts <= 0 uses DefaultMaxAttempts.
func New(repo repository.Repository, l log.Logger, maxAttempts int) evaluation.UseCase {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &implUseCase{
		repo:        repo,
		l:           l,
		maxAttempts: maxAttempts,
	}
}
