package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"card-consumption-assistant/internal/intent"
	"card-consumption-assistant/internal/retrieval"
	"card-consumption-assistant/pkg/aggregate"
	"card-consumption-assistant/pkg/metrics"
)

var aggregatedKeys = []string{
	intent.MetadataCategory,
	intent.MetadataSQL1,
	intent.MetadataSQL2,
	intent.MetadataSQL3,
	intent.MetadataQuestionCategory,
	intent.MetadataScore,
}

// Classify routes one customer turn. Checks run in a fixed order and the
// first hit wins: gate block, extraction block, low score, match.
func (uc *implUseCase) Classify(ctx context.Context, input intent.ClassifyInput) intent.ClassifyOutput {
	ctx, span := uc.tracer.Start(ctx, "intent.Classify")
	defer span.End()

	d := uc.classify(ctx, input)

	span.SetAttributes(
		attribute.String("outcome", string(d.Outcome)),
		attribute.String("tid", d.Template.TID),
	)
	if d.Err != nil {
		span.RecordError(d.Err)
		span.SetStatus(codes.Error, d.Err.Error())
		uc.l.Errorf(ctx, "%s: session=%s: %v", LogPrefixClassify, input.SessionID, d.Err)
	} else {
		uc.l.Infof(ctx, "%s: session=%s outcome=%s tid=%s", LogPrefixClassify, input.SessionID, d.Outcome, d.Template.TID)
	}
	metrics.IntentDecisions.WithLabelValues(string(d.Outcome)).Inc()

	return intent.ClassifyOutput{
		SessionID:  input.SessionID,
		CustomerID: input.CustomerID,
		Decision:   d,
	}
}

func (uc *implUseCase) classify(ctx context.Context, input intent.ClassifyInput) (d intent.Decision) {
	defer func() {
		if r := recover(); r != nil {
			d = intent.Failed(fmt.Errorf("panic: %v", r))
		}
	}()

	if strings.TrimSpace(input.Message) == "" {
		return intent.Failed(intent.ErrEmptyMessage)
	}

	gated, err := uc.gate(ctx, input.SessionID, input.Message)
	if err != nil {
		return intent.Failed(err)
	}
	if gated.Blocked() {
		return intent.Blocked(gated.Text)
	}

	ext, err := uc.extract(ctx, gated.Text, input.ReferenceTime)
	if err != nil {
		return intent.Failed(err)
	}
	// The reason shown is the text that was checked first, the gate output.
	if ext.Output.Blocked() {
		return intent.Blocked(gated.Text)
	}

	query := ext.Entities.SearchText
	if query == "" {
		query = gated.Text
	}
	found, err := uc.retriever.Search(ctx, retrieval.SearchInput{
		Query:     query,
		K:         uc.cfg.ResultCap,
		Threshold: uc.cfg.ScoreThreshold,
	})
	if err != nil {
		return intent.Failed(err)
	}
	if len(found.Documents) == 0 {
		return intent.LowConfidence()
	}

	agg := aggregate.Metadata(found.Documents, aggregatedKeys...)
	category, _ := agg.Get(intent.MetadataCategory)
	tid := categoryID(category)
	if tid == "" {
		return intent.Failed(intent.ErrMissingCategory)
	}

	var sqls []any
	for _, k := range []string{intent.MetadataSQL1, intent.MetadataSQL2, intent.MetadataSQL3} {
		v, _ := agg.Get(k)
		sqls = append(sqls, v)
	}
	queries := renderQueries(sqls, ext.Entities.Slots, input.CustomerID)
	uc.l.Debugf(ctx, "%s: rendered queries: %q", LogPrefixClassify, queries)

	questionCategory, _ := agg.Get(intent.MetadataQuestionCategory)
	scoreValue, _ := agg.Get(intent.MetadataScore)
	score, _ := aggregate.ToFloat(scoreValue)

	return intent.Decision{
		Outcome: intent.OutcomeMatched,
		Template: intent.Template{
			TID:       tid,
			StartDate: ext.Entities.Get(intent.KeyStartDate),
			EndDate:   ext.Entities.Get(intent.KeyEndDate),
			StoreName: []*string{
				ext.Entities.Get(intent.KeyStore1),
				ext.Entities.Get(intent.KeyStore2),
			},
			CategoryName: []*string{ext.Entities.Get(intent.KeyCategory)},
		},
		Message:          gated.Text,
		Queries:          queries,
		QuestionCategory: questionCategory,
		Score:            score,
	}
}
