package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"card-consumption-assistant/pkg/response"
)

// Chat godoc
// @Summary     Route a customer question
// @Description Moderates and rewrites the question, extracts its query slots and matches it to a canned-question template.
// @Description Failures are reported in MWHEADER.RETURNCODE with HTTP 200.
// @Tags        CardConsumption
// @Accept      json
// @Produce     json
// @Param       body body     chatBody true "MWHEADER and TRANRQ"
// @Success     200  {object} chatEnvelope
// @Router      /api/card-consumption/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, header, ref, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "intent.http.Chat: txnseq=%s: %v", header.TXNSEQ, err)
		response.Error(c, header.Response(), err, nil)
		return
	}

	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	out := h.uc.Classify(ctx, req.toInput(ref))
	if err := ctx.Err(); err != nil {
		h.l.Errorf(ctx, "intent.http.Chat: txnseq=%s: %v", header.TXNSEQ, err)
		response.Error(c, header.Response(), h.mapError(err), nil)
		return
	}

	response.OK(c, header.Response(), h.newChatResp(out))
}

// GenaiResponse godoc
// @Summary     Compose the answer for a matched template
// @Description Writes a natural-language answer from the computed totals, in the tone of the customer's segment.
// @Description Failures are reported in MWHEADER.RETURNCODE with HTTP 200.
// @Tags        CardConsumption
// @Accept      json
// @Produce     json
// @Param       body body     genaiBody true "MWHEADER and TRANRQ"
// @Success     200  {object} genaiEnvelope
// @Router      /api/card-consumption/genai-response [POST]
func (h *handler) GenaiResponse(c *gin.Context) {
	ctx := c.Request.Context()

	req, header, err := h.processGenaiReq(c)
	if err != nil {
		h.l.Warnf(ctx, "intent.http.GenaiResponse: txnseq=%s: %v", header.TXNSEQ, err)
		response.Error(c, header.Response(), err, nil)
		return
	}

	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	out := h.uc.Compose(ctx, req.toInput())
	if err := ctx.Err(); err != nil {
		h.l.Errorf(ctx, "intent.http.GenaiResponse: txnseq=%s: %v", header.TXNSEQ, err)
		response.Error(c, header.Response(), h.mapError(err), nil)
		return
	}

	response.OK(c, header.Response(), h.newGenaiResp(out))
}

func (h *handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout)
}
