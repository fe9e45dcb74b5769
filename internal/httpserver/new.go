package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"card-consumption-assistant/internal/evaluation"
	"card-consumption-assistant/internal/intent"
	"card-consumption-assistant/internal/middleware"
	"card-consumption-assistant/pkg/datemath"
	"card-consumption-assistant/pkg/log"
)

// ReadinessCheck reports whether a backing service can take traffic.
type ReadinessCheck func(ctx context.Context) error

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	metricsEnabled  bool
	shutdownTimeout time.Duration
	mw              middleware.Middleware
	readiness       map[string]ReadinessCheck

	// Card consumption domain
	intentUC       intent.UseCase
	evaluationUC   evaluation.UseCase
	dates          *datemath.Parser
	requestTimeout time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	MetricsEnabled  bool
	ShutdownTimeout time.Duration
	Middleware      middleware.Middleware
	Readiness       map[string]ReadinessCheck

	// Card consumption domain
	IntentUC       intent.UseCase
	EvaluationUC   evaluation.UseCase // optional, needs postgres
	Dates          *datemath.Parser
	RequestTimeout time.Duration
}

const defaultShutdownTimeout = 10 * time.Second

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		metricsEnabled:  cfg.MetricsEnabled,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              cfg.Middleware,
		readiness:       cfg.Readiness,
		intentUC:        cfg.IntentUC,
		evaluationUC:    cfg.EvaluationUC,
		dates:           cfg.Dates,
		requestTimeout:  cfg.RequestTimeout,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.intentUC == nil {
		return errors.New("intent usecase is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	return nil
}
