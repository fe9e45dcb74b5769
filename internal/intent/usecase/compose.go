package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"card-consumption-assistant/internal/intent"
	"card-consumption-assistant/pkg/llmprovider"
)

// Compose writes the customer-facing answer for a matched template. The
// answer goes through the same moderation check as every other model output.
func (uc *implUseCase) Compose(ctx context.Context, input intent.ComposeInput) intent.ComposeOutput {
	ctx, span := uc.tracer.Start(ctx, "intent.Compose")
	defer span.End()

	out := intent.ComposeOutput{
		SessionID:  input.SessionID,
		CustomerID: input.CustomerID,
	}

	tone := uc.tone(input.CustomerID)
	description, ok := toneDescriptions[tone]
	if !ok {
		description = toneDescriptions[ToneGeneral]
	}
	span.SetAttributes(attribute.String("tone", tone), attribute.String("tid", input.TID))

	prompt := fmt.Sprintf(PromptCompose,
		uc.detector.Sentinel(),
		tone,
		description,
		input.Message,
		orUnknown(input.StartDate),
		orUnknown(input.EndDate),
		joinSlots(input.StoreName),
		joinSlots(input.CategoryName),
		input.ConsumptionNumber,
		orUnknown(input.TotalAmount),
	)

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{llmprovider.TextMessage(llmprovider.RoleUser, prompt)},
		Temperature: uc.cfg.Temperature,
	})
	if err != nil {
		err = fmt.Errorf("compose completion: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		uc.l.Errorf(ctx, "%s: session=%s: %v", LogPrefixCompose, input.SessionID, err)

		reason := err.Error()
		out.Outcome = intent.OutcomeFailed
		out.TID = intent.TIDNoMatch
		out.BlockReason = &reason
		out.Err = err
		return out
	}

	answer := uc.detector.Detect(strings.TrimSpace(resp.Text()))
	if answer.Blocked() {
		uc.l.Infof(ctx, "%s: session=%s blocked", LogPrefixCompose, input.SessionID)
		reason := answer.Text
		out.Outcome = intent.OutcomeBlocked
		out.TID = intent.TIDBlocked
		out.BlockReason = &reason
		return out
	}

	message := answer.Text
	out.Outcome = intent.OutcomeMatched
	out.TID = input.TID
	out.Message = &message
	uc.l.Infof(ctx, "%s: session=%s tid=%s tone=%s", LogPrefixCompose, input.SessionID, input.TID, tone)
	return out
}

// tone maps a customer id to its segment label.
func (uc *implUseCase) tone(customerID string) string {
	if t, ok := uc.cfg.CustomerSegments[customerID]; ok && t != "" {
		return t
	}
	return ToneGeneral
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return unknownSlot
	}
	return s
}

func joinSlots(slots []*string) string {
	values := make([]string, 0, len(slots))
	for _, s := range slots {
		if s != nil && strings.TrimSpace(*s) != "" {
			values = append(values, *s)
		}
	}
	if len(values) == 0 {
		return unknownSlot
	}
	return strings.Join(values, "、")
}
