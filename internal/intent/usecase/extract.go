package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"card-consumption-assistant/internal/intent"
	"card-consumption-assistant/pkg/datemath"
	"card-consumption-assistant/pkg/llmprovider"
	"card-consumption-assistant/pkg/moderation"
)

type extraction struct {
	Output   moderation.Output
	Entities intent.Entities
}

// extract asks the model for the query slots of text. A blocked answer is
// returned before any parsing is attempted.
func (uc *implUseCase) extract(ctx context.Context, text string, ref time.Time) (extraction, error) {
	ctx, span := uc.tracer.Start(ctx, "intent.extract")
	defer span.End()

	prompt := fmt.Sprintf(PromptExtraction, uc.detector.Sentinel(), ref.Format(datemath.ReferenceLayout), text)
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{llmprovider.TextMessage(llmprovider.RoleUser, prompt)},
		Temperature: uc.cfg.Temperature,
	})
	if err != nil {
		span.RecordError(err)
		return extraction{}, fmt.Errorf("extraction completion: %w", err)
	}

	out := uc.detector.Detect(resp.Text())
	span.SetAttributes(attribute.String("verdict", out.Verdict.String()))
	if out.Blocked() {
		return extraction{Output: out}, nil
	}

	raw, err := parseObject(out.Text)
	if err != nil {
		span.RecordError(err)
		uc.l.Warnf(ctx, "%s: %v: %q", LogPrefixExtract, err, out.Text)
		return extraction{}, err
	}

	return extraction{Output: out, Entities: uc.toEntities(ctx, raw, ref)}, nil
}

// parseObject decodes a JSON object, tolerating a markdown code fence around it.
func parseObject(text string) (map[string]any, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", intent.ErrExtractionParse, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: not an object", intent.ErrExtractionParse)
	}
	return obj, nil
}

func (uc *implUseCase) toEntities(ctx context.Context, raw map[string]any, ref time.Time) intent.Entities {
	slots := make(map[string]*string, len(raw))
	for k, v := range raw {
		slots[k] = slotValue(v)
	}

	for _, k := range []string{intent.KeyStartDate, intent.KeyEndDate} {
		v := slots[k]
		if v == nil {
			continue
		}
		normalized, err := uc.dates.Normalize(*v, ref)
		if err != nil {
			uc.l.Warnf(ctx, "%s: keeping %s as %q: %v", LogPrefixExtract, k, *v, err)
			continue
		}
		slots[k] = &normalized
	}

	e := intent.Entities{Slots: slots}
	if q := slots[intent.KeyModifyQuery]; q != nil {
		e.SearchText = *q
	}
	return e
}

// slotValue maps JSON null and blank strings to nil.
func slotValue(v any) *string {
	var s string
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		s = strings.TrimSpace(val)
	default:
		s = strings.TrimSpace(fmt.Sprint(val))
	}
	if s == "" || strings.EqualFold(s, "null") {
		return nil
	}
	return &s
}
