package repository

// SearchOptions defines search parameters.
type SearchOptions struct {
	Query          string
	Limit          int
	ScoreThreshold float64 // backends that support it filter server side
}
