package http

import (
	"github.com/gin-gonic/gin"

	"card-consumption-assistant/internal/evaluation"
	"card-consumption-assistant/pkg/response"
)

// Evaluate godoc
// @Summary     Record answer feedback
// @Description Stores whether the customer found an answer helpful. Inserts are retried; exhaustion is RETURNCODE 2002.
// @Tags        CardConsumption
// @Accept      json
// @Produce     json
// @Param       body body     evaluateBody true "MWHEADER and TRANRQ"
// @Success     200  {object} evaluateEnvelope
// @Router      /api/card-consumption/evaluate [POST]
func (h *handler) Evaluate(c *gin.Context) {
	ctx := c.Request.Context()

	req, header, at, err := h.processEvaluateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "evaluation.http.Evaluate: txnseq=%s: %v", header.TXNSEQ, err)
		response.Error(c, header.Response(), err, nil)
		return
	}

	out, err := h.uc.Evaluate(ctx, req.toInput(header.TXNSEQ, at))
	if err != nil {
		h.l.Errorf(ctx, "evaluation.http.Evaluate: uc.Evaluate: %v", err)
		response.Error(c, header.Response(), h.mapError(err), h.newEvaluateResp(evaluation.EvaluateOutput{
			SessionID:  req.SessionID,
			CustomerID: req.CustomerID,
		}))
		return
	}

	response.OK(c, header.Response(), h.newEvaluateResp(out))
}
