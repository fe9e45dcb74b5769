package evaluation

import "errors"

var (
	// ErrInsertExhausted is returned once every insert attempt has failed.
	ErrInsertExhausted = errors.New("evaluation insert retries exhausted")
)
