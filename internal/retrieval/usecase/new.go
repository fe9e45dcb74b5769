package usecase

import (
	"card-consumption-assistant/internal/retrieval"
	"card-consumption-assistant/internal/retrieval/repository"
	pkgLog "card-consumption-assistant/pkg/log"
)

const (
	defaultResultCap = 1
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.VectorRepository
	resultCap int
	threshold float64
}

// New creates the retrieval usecase. resultCap and threshold are the defaults
// applied when a search does not set its own.
func New(l pkgLog.Logger, repo repository.VectorRepository, resultCap int, threshold float64) retrieval.UseCase {
	if resultCap <= 0 {
		resultCap = defaultResultCap
	}
	if threshold < 0 {
		threshold = 0
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		resultCap: resultCap,
		threshold: threshold,
	}
}
