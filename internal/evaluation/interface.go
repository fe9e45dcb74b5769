package evaluation

import "context"

// UseCase records customer feedback on generated answers.
type UseCase interface {
	Evaluate(ctx context.Context, input EvaluateInput) (EvaluateOutput, error)
}
