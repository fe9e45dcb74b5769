package voyage

import (
	"context"
)

// IVoyage embeds texts with the Voyage AI API.
// It satisfies langchaingo's embeddings.Embedder, so it can back any
// vector store that takes one. Implementations are safe for concurrent use.
type IVoyage interface {
	Embed(ctx context.Context, texts []string, inputType InputType) ([][]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}
