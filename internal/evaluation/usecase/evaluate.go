package usecase

import (
	"context"
	"fmt"

	"card-consumption-assistant/internal/evaluation"
)

// Evaluate stores the feedback, retrying failed inserts. Each attempt runs in
// its own transaction, so a failed one leaves nothing behind.
func (uc *implUseCase) Evaluate(ctx context.Context, input evaluation.EvaluateInput) (evaluation.EvaluateOutput, error) {
	out := evaluation.EvaluateOutput{
		SessionID:  input.SessionID,
		CustomerID: input.CustomerID,
	}

	e := evaluation.Evaluation{
		TxnSeq:     input.TxnSeq,
		SessionID:  input.SessionID,
		CustomerID: input.CustomerID,
		Positive:   input.Positive,
		Time:       input.Time,
	}

	var lastErr error
	for attempt := 1; attempt <= uc.maxAttempts; attempt++ {
		out.Attempts = attempt
		if err := ctx.Err(); err != nil {
			return out, err
		}

		lastErr = uc.repo.CreateEvaluation(ctx, e)
		if lastErr == nil {
			uc.l.Infof(ctx, "uc.Evaluate: txnseq=%s stored (attempt %d)", input.TxnSeq, attempt)
			return out, nil
		}
		uc.l.Warnf(ctx, "uc.Evaluate: txnseq=%s attempt %d/%d failed: %v", input.TxnSeq, attempt, uc.maxAttempts, lastErr)
	}

	uc.l.Errorf(ctx, "uc.Evaluate: txnseq=%s: retries exhausted", input.TxnSeq)
	return out, fmt.Errorf("%w: %v", evaluation.ErrInsertExhausted, lastErr)
}
