package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"card-consumption-assistant/internal/model"
	"card-consumption-assistant/internal/retrieval"
	"card-consumption-assistant/internal/retrieval/repository"
	"card-consumption-assistant/pkg/metrics"
)

// Search queries the index and keeps the k best documents scoring at least the threshold.
func (uc *implUseCase) Search(ctx context.Context, input retrieval.SearchInput) (retrieval.SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return retrieval.SearchOutput{}, nil
	}

	k := input.K
	if k <= 0 {
		k = uc.resultCap
	}
	threshold := input.Threshold
	if threshold < 0 {
		threshold = uc.threshold
	}
	if threshold > 1 {
		return retrieval.SearchOutput{}, retrieval.ErrInvalidThreshold
	}

	start := time.Now()
	found, err := uc.repo.Search(ctx, repository.SearchOptions{
		Query:          query,
		Limit:          k,
		ScoreThreshold: threshold,
	})
	metrics.RetrievalDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		uc.l.Errorf(ctx, "retrieval.usecase.Search: repo.Search: %v", err)
		return retrieval.SearchOutput{}, fmt.Errorf("similarity search: %w", err)
	}

	docs := make([]model.CandidateDocument, 0, len(found))
	for _, d := range found {
		score := clampScore(d.Score)
		if score < threshold {
			continue
		}
		docs = append(docs, withScore(d, score))
	}

	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Score > docs[j].Score
	})
	if len(docs) > k {
		docs = docs[:k]
	}

	uc.l.Debugf(ctx, "retrieval.usecase.Search: %d of %d candidates kept (k=%d, threshold=%.2f)", len(docs), len(found), k, threshold)
	return retrieval.SearchOutput{Documents: docs}, nil
}

// withScore copies the metadata so the repository's map is never mutated.
func withScore(d model.CandidateDocument, score float64) model.CandidateDocument {
	md := make(map[string]any, len(d.Metadata)+1)
	for k, v := range d.Metadata {
		md[k] = v
	}
	md[model.MetadataKeyScore] = score
	d.Metadata = md
	d.Score = score
	return d
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
