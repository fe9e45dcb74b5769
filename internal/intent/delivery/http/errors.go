package http

import (
	"context"
	"errors"

	pkgErrors "card-consumption-assistant/pkg/errors"
)

// mapError translates a pipeline failure into the RETURNCODE reported to the caller.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return pkgErrors.ErrTimeout.Wrap(err)
	default:
		return pkgErrors.ErrInternalServer.Wrap(err)
	}
}
