package http

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"card-consumption-assistant/pkg/envelope"
	pkgErrors "card-consumption-assistant/pkg/errors"
)

// processChatReq decodes the chat envelope and resolves its reference time.
func (h *handler) processChatReq(c *gin.Context) (chatReq, envelope.Header, time.Time, error) {
	var req chatReq
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return req, envelope.Header{}, time.Time{}, pkgErrors.ErrParsingJSON.Wrap(err)
	}

	header, err := envelope.Decode(raw, &req)
	if err != nil {
		return req, header, time.Time{}, err
	}

	ref, err := h.dates.ParseRequestTime(req.Time)
	if err != nil {
		return req, header, time.Time{}, pkgErrors.ErrParsingTranRq.Wrap(err)
	}
	return req, header, ref, nil
}

// processGenaiReq decodes the genai-response envelope and checks the amount.
func (h *handler) processGenaiReq(c *gin.Context) (genaiReq, envelope.Header, error) {
	var req genaiReq
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return req, envelope.Header{}, pkgErrors.ErrParsingJSON.Wrap(err)
	}

	header, err := envelope.Decode(raw, &req)
	if err != nil {
		return req, header, err
	}
	if err := req.validate(); err != nil {
		return req, header, pkgErrors.ErrParsingTranRq.Wrap(err)
	}
	return req, header, nil
}
