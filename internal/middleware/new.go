package middleware

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"card-consumption-assistant/config"
	"card-consumption-assistant/pkg/log"
)

const tracerName = "card-consumption-assistant/internal/middleware"

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
	tracer      trace.Tracer
	now         func() time.Time
}

// New creates the HTTP middlewares. A disabled rate limit lets every request through.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	var rl *rateLimiter
	if cfg.Enabled && cfg.RequestsPerMin > 0 {
		rl = newRateLimiter(cfg.RequestsPerMin)
	}
	return Middleware{
		l:           l,
		rateLimiter: rl,
		tracer:      otel.Tracer(tracerName),
		now:         time.Now,
	}
}
