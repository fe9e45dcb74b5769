package http

import (
	"time"

	"card-consumption-assistant/internal/evaluation"
	"card-consumption-assistant/pkg/envelope"
	"card-consumption-assistant/pkg/response"
)

// --- Request DTOs ---

type evaluateReq struct {
	SessionID  string `json:"sessionId"  validate:"required,max=12"`
	CustomerID string `json:"customerId" validate:"required,max=10"`
	Evaluate   *bool  `json:"evaluate"   validate:"required"`
	Time       string `json:"time"       validate:"required,max=20"`
}

func (r evaluateReq) toInput(txnSeq string, at time.Time) evaluation.EvaluateInput {
	return evaluation.EvaluateInput{
		TxnSeq:     txnSeq,
		SessionID:  r.SessionID,
		CustomerID: r.CustomerID,
		Positive:   *r.Evaluate,
		Time:       at,
	}
}

// --- Response DTOs ---

type evaluateResp struct {
	SessionID  string `json:"sessionId"`
	CustomerID string `json:"customerId"`
}

func (h *handler) newEvaluateResp(out evaluation.EvaluateOutput) evaluateResp {
	return evaluateResp{
		SessionID:  out.SessionID,
		CustomerID: out.CustomerID,
	}
}

// --- Swagger shapes ---

type evaluateBody struct {
	MWHEADER envelope.Header `json:"MWHEADER"`
	TRANRQ   evaluateReq     `json:"TRANRQ"`
}

type evaluateEnvelope struct {
	MWHEADER response.Header `json:"MWHEADER"`
	TRANRS   evaluateResp    `json:"TRANRS"`
}
