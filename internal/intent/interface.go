package intent

import (
	"context"
)

// UseCase turns customer questions about card spending into routing decisions.
type UseCase interface {
	// Classify runs gate, extraction, retrieval and aggregation in order.
	// It never fails: every fault becomes a Decision with tid 99.
	Classify(ctx context.Context, input ClassifyInput) ClassifyOutput

	// Compose writes the natural-language answer for a matched template.
	Compose(ctx context.Context, input ComposeInput) ComposeOutput
}
