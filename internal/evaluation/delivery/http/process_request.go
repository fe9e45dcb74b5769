package http

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"card-consumption-assistant/pkg/envelope"
	pkgErrors "card-consumption-assistant/pkg/errors"
)

// processEvaluateReq decodes the evaluate envelope and parses its time.
func (h *handler) processEvaluateReq(c *gin.Context) (evaluateReq, envelope.Header, time.Time, error) {
	var req evaluateReq
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return req, envelope.Header{}, time.Time{}, pkgErrors.ErrParsingJSON.Wrap(err)
	}

	header, err := envelope.Decode(raw, &req)
	if err != nil {
		return req, header, time.Time{}, err
	}

	at, err := h.dates.ParseRequestTime(req.Time)
	if err != nil {
		return req, header, time.Time{}, pkgErrors.ErrParsingTranRq.Wrap(err)
	}
	return req, header, at, nil
}
