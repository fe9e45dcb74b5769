package http

import (
	"context"
	"errors"

	"card-consumption-assistant/internal/evaluation"
	pkgErrors "card-consumption-assistant/pkg/errors"
)

// mapError translates use-case errors into the RETURNCODE reported to the caller.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, evaluation.ErrInsertExhausted):
		return pkgErrors.ErrDBInsert.Wrap(err)
	case errors.Is(err, context.DeadlineExceeded):
		return pkgErrors.ErrTimeout.Wrap(err)
	default:
		return pkgErrors.ErrInternalServer.Wrap(err)
	}
}
