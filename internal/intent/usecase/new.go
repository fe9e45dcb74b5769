package usecase

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"card-consumption-assistant/internal/intent"
	"card-consumption-assistant/internal/retrieval"
	"card-consumption-assistant/internal/session"
	"card-consumption-assistant/pkg/datemath"
	"card-consumption-assistant/pkg/llmprovider"
	pkgLog "card-consumption-assistant/pkg/log"
	"card-consumption-assistant/pkg/moderation"
)

// Config holds the pipeline options.
type Config struct {
	ResultCap        int
	ScoreThreshold   float64
	HistoryTurns     int // most recent turns sent to the gate, 0 for all
	Temperature      float64
	CustomerSegments map[string]string
}

type implUseCase struct {
	l         pkgLog.Logger
	llm       llmprovider.Generator
	retriever retrieval.UseCase
	history   session.Store
	detector  moderation.Detector
	dates     *datemath.Parser
	cfg       Config
	tracer    trace.Tracer
	now       func() time.Time
}

// New creates the intent usecase. All collaborators are shared across requests.
func New(
	l pkgLog.Logger,
	llm llmprovider.Generator,
	retriever retrieval.UseCase,
	history session.Store,
	detector moderation.Detector,
	dates *datemath.Parser,
	cfg Config,
) intent.UseCase {
	if len(cfg.CustomerSegments) == 0 {
		cfg.CustomerSegments = DefaultCustomerSegments
	}
	return &implUseCase{
		l:         l,
		llm:       llm,
		retriever: retriever,
		history:   history,
		detector:  detector,
		dates:     dates,
		cfg:       cfg,
		tracer:    otel.Tracer(tracerName),
		now:       time.Now,
	}
}
