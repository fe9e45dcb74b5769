package retrieval

import "errors"

var (
	ErrNoDocuments      = errors.New("no documents to index")
	ErrMissingContent   = errors.New("template content is empty")
	ErrInvalidThreshold = errors.New("score threshold must be within [0,1]")
)
