package retrieval

import "card-consumption-assistant/internal/model"

// SearchInput is a similarity query.
// Zero K and negative Threshold fall back to the configured defaults.
type SearchInput struct {
	Query     string
	K         int
	Threshold float64
}

// SearchOutput holds the matches ordered by descending score.
type SearchOutput struct {
	Documents []model.CandidateDocument
}

type IndexInput struct {
	Documents []model.TemplateDocument
}

type IndexOutput struct {
	Indexed int
}
