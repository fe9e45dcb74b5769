package evaluation

import "time"

// Evaluation is one thumbs-up or thumbs-down on an answer.
type Evaluation struct {
	TxnSeq     string
	SessionID  string
	CustomerID string
	Positive   bool
	Time       time.Time
}

// --- UseCase Inputs ---

type EvaluateInput struct {
	TxnSeq     string
	SessionID  string
	CustomerID string
	Positive   bool
	Time       time.Time
}

// --- UseCase Outputs ---

type EvaluateOutput struct {
	SessionID  string
	CustomerID string
	Attempts   int
}
