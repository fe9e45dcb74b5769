package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"card-consumption-assistant/internal/model"
	"card-consumption-assistant/pkg/llmprovider"
	"card-consumption-assistant/pkg/moderation"
)

// gate moderates and rewrites the raw question with the session history as context.
// Once the model answers, both turns are stored before the verdict is looked at,
// so the history holds exactly what was exchanged whatever happens next.
func (uc *implUseCase) gate(ctx context.Context, sessionID, text string) (moderation.Output, error) {
	ctx, span := uc.tracer.Start(ctx, "intent.gate")
	defer span.End()

	history, err := uc.history.Read(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		return moderation.Output{}, fmt.Errorf("read session history: %w", err)
	}
	history = lastTurns(history, uc.cfg.HistoryTurns)

	system := llmprovider.TextMessage(llmprovider.RoleSystem, fmt.Sprintf(PromptGateSystem, uc.detector.Sentinel()))
	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, t := range history {
		messages = append(messages, turnMessage(t))
	}
	messages = append(messages, llmprovider.TextMessage(llmprovider.RoleUser, text))

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          messages,
		Temperature:       uc.cfg.Temperature,
	})
	if err != nil {
		span.RecordError(err)
		return moderation.Output{}, fmt.Errorf("gate completion: %w", err)
	}
	output := resp.Text()

	now := uc.now()
	if err := uc.history.Append(ctx, sessionID, model.HumanTurn(text, now), model.AITurn(output, now)); err != nil {
		span.RecordError(err)
		return moderation.Output{}, fmt.Errorf("append session history: %w", err)
	}

	out := uc.detector.Detect(output)
	span.SetAttributes(
		attribute.Int("history.turns", len(history)),
		attribute.String("verdict", out.Verdict.String()),
	)
	uc.l.Debugf(ctx, "%s: session=%s verdict=%s", LogPrefixGate, sessionID, out.Verdict)
	return out, nil
}

func turnMessage(t model.Turn) llmprovider.Message {
	role := llmprovider.RoleUser
	if t.Role == model.RoleAI {
		role = llmprovider.RoleAssistant
	}
	return llmprovider.TextMessage(role, t.Text)
}

func lastTurns(turns []model.Turn, n int) []model.Turn {
	if n <= 0 || len(turns) <= n {
		return turns
	}
	return turns[len(turns)-n:]
}
