// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "card_consumption"

var (
	// LLMTokens counts model tokens.
	// Labels: provider, model, kind (input, output)
	LLMTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "tokens_total",
			Help:      "Total number of tokens consumed by model calls",
		},
		[]string{"provider", "model", "kind"},
	)

	// LLMRequests counts model calls.
	// Labels: provider, result (success, error)
	LLMRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "requests_total",
			Help:      "Total number of model calls",
		},
		[]string{"provider", "result"},
	)

	// IntentDecisions counts routing outcomes.
	// Labels: outcome (matched, blocked, low_confidence, extraction_fault, failed)
	IntentDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "intent",
			Name:      "decisions_total",
			Help:      "Total number of routing decisions by outcome",
		},
		[]string{"outcome"},
	)

	// RetrievalDuration tracks similarity search latency.
	RetrievalDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "retrieval",
			Name:      "search_duration_seconds",
			Help:      "Duration of similarity searches in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// HTTPRequests counts handled API requests.
	// Labels: route, return_code
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of API requests by route and return code",
		},
		[]string{"route", "return_code"},
	)

	// HTTPDuration tracks API request latency.
	// Labels: route
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of API requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)
