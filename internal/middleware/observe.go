package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"card-consumption-assistant/pkg/metrics"
	"card-consumption-assistant/pkg/response"
)

// Trace starts a server span per request, continuing any incoming trace context.
func (m Middleware) Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := m.tracer.Start(ctx, fmt.Sprintf("%s %s", c.Request.Method, route(c)),
			trace.WithSpanKind(trace.SpanKindServer),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		span.SetAttributes(
			attribute.Int("http.status_code", c.Writer.Status()),
			attribute.String("return_code", returnCode(c)),
		)
	}
}

// Observe logs each request and records its return code and latency.
func (m Middleware) Observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := m.now()
		c.Next()
		elapsed := m.now().Sub(start)

		r, code := route(c), returnCode(c)
		metrics.HTTPRequests.WithLabelValues(r, code).Inc()
		metrics.HTTPDuration.WithLabelValues(r).Observe(elapsed.Seconds())

		m.l.Infof(c.Request.Context(), "%s %s status=%d return_code=%s latency=%s",
			c.Request.Method, r, c.Writer.Status(), code, elapsed)
	}
}

func route(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "unmatched"
}

func returnCode(c *gin.Context) string {
	if v, ok := c.Get(response.ReturnCodeKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return "none"
}
