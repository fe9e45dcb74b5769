package retrieval

import (
	"context"
)

// UseCase searches and maintains the canned-question template index.
type UseCase interface {
	// Search returns templates similar to the query, best first, all scoring at least the threshold.
	// An empty result is not an error.
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)

	// Index embeds and stores templates, replacing documents with the same ID.
	Index(ctx context.Context, input IndexInput) (IndexOutput, error)
}
