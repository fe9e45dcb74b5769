package intent

import "errors"

var (
	// ErrExtractionParse marks structured output that is not a JSON object.
	ErrExtractionParse = errors.New("extraction output is not valid JSON")
	ErrMissingCategory = errors.New("matched template has no category")
	ErrEmptyMessage    = errors.New("message is empty")
)
