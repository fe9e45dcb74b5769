package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"card-consumption-assistant/config"
	"card-consumption-assistant/config/postgre"
	"card-consumption-assistant/config/redis"
	_ "card-consumption-assistant/docs" // Swagger docs
	"card-consumption-assistant/internal/evaluation"
	evaluationRepo "card-consumption-assistant/internal/evaluation/repository/postgre"
	evaluationUC "card-consumption-assistant/internal/evaluation/usecase"
	"card-consumption-assistant/internal/httpserver"
	intentUC "card-consumption-assistant/internal/intent/usecase"
	"card-consumption-assistant/internal/middleware"
	"card-consumption-assistant/internal/retrieval/backend"
	retrievalUC "card-consumption-assistant/internal/retrieval/usecase"
	"card-consumption-assistant/internal/session"
	sessionMemory "card-consumption-assistant/internal/session/repository/memory"
	sessionPostgre "card-consumption-assistant/internal/session/repository/postgre"
	sessionRedis "card-consumption-assistant/internal/session/repository/redis"
	"card-consumption-assistant/pkg/datemath"
	"card-consumption-assistant/pkg/llmprovider"
	"card-consumption-assistant/pkg/log"
	"card-consumption-assistant/pkg/moderation"
	"card-consumption-assistant/pkg/tracing"
)

// @title       Card Consumption Assistant API
// @description Conversational routing of credit-card spending questions to canned SQL templates, answer composition and feedback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server exited with error: ", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	logger.Info(ctx, "Starting Card Consumption Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Tracing
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.Init(ctx, cfg.Tracing)
		if err != nil {
			return fmt.Errorf("tracing: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				logger.Warnf(ctx, "tracing shutdown: %v", err)
			}
		}()
	}

	// 4. Dates
	dates, err := datemath.NewParser(cfg.Environment.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Environment.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 5. Storage (optional)
	readiness := map[string]httpserver.ReadinessCheck{}

	var db *gorm.DB
	if cfg.Postgres.DSN != "" {
		db, err = postgre.Connect(ctx, cfg.Postgres)
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		defer func() {
			if err := postgre.Disconnect(context.Background(), db); err != nil {
				logger.Warnf(ctx, "postgres disconnect: %v", err)
			}
		}()
		if err := evaluationRepo.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate evaluate: %w", err)
		}
		readiness["postgres"] = func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
		logger.Info(ctx, "PostgreSQL connected")
	}

	var redisClient *goredis.Client
	if cfg.Session.Backend == "redis" {
		redisClient, err = redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer func() {
			if err := redis.Disconnect(); err != nil {
				logger.Warnf(ctx, "redis disconnect: %v", err)
			}
		}()
		readiness["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
		logger.Info(ctx, "Redis connected")
	}

	// 6. Session history
	history, err := newSessionStore(ctx, cfg, db, redisClient, logger)
	if err != nil {
		return err
	}

	// 7. Model providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("llm providers: %w", err)
	}
	retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
	maxTotal, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger)

	// 8. Retrieval
	vectors, err := backend.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("retrieval: %w", err)
	}
	retriever := retrievalUC.New(logger, vectors, cfg.Retrieval.ResultCap, cfg.Retrieval.ScoreThreshold)
	logger.Infof(ctx, "Retrieval backend: %s (collection %s)", cfg.Retrieval.Backend, cfg.Retrieval.CollectionName)

	// 9. Use cases
	intent := intentUC.New(logger, llm, retriever, history, moderation.NewDetector(cfg.Moderation.Sentinel), dates, intentUC.Config{
		ResultCap:        cfg.Retrieval.ResultCap,
		ScoreThreshold:   cfg.Retrieval.ScoreThreshold,
		HistoryTurns:     cfg.Session.MaxTurns,
		Temperature:      cfg.LLM.Temperature,
		CustomerSegments: cfg.Composer.CustomerSegments,
	})

	var evaluations evaluation.UseCase
	if db != nil {
		evaluations = evaluationUC.New(evaluationRepo.New(db, logger), logger, evaluationUC.DefaultMaxAttempts)
	}

	// 10. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		MetricsEnabled: cfg.Metrics.Enabled,
		Middleware:     mw,
		Readiness:      readiness,
		IntentUC:       intent,
		EvaluationUC:   evaluations,
		Dates:          dates,
		RequestTimeout: cfg.HTTPServer.RequestTimeout,
	})
	if err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	// 11. Run
	return httpServer.Run(ctx)
}

func newSessionStore(ctx context.Context, cfg *config.Config, db *gorm.DB, rdb *goredis.Client, logger log.Logger) (session.Store, error) {
	switch cfg.Session.Backend {
	case "postgres":
		if db == nil {
			return nil, fmt.Errorf("session backend postgres requires postgres.dsn")
		}
		if err := sessionPostgre.Migrate(ctx, db); err != nil {
			return nil, fmt.Errorf("migrate message_store: %w", err)
		}
		return sessionPostgre.New(db, logger), nil
	case "redis":
		return sessionRedis.New(rdb, cfg.Session.TTL, logger), nil
	case "memory", "":
		return sessionMemory.New(cfg.Session.MaxSessions, cfg.Session.TTL), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}
