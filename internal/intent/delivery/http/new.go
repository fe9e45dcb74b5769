package http

import (
	"time"

	"card-consumption-assistant/internal/intent"
	"card-consumption-assistant/pkg/datemath"
	"card-consumption-assistant/pkg/log"
)

type handler struct {
	l       log.Logger
	uc      intent.UseCase
	dates   *datemath.Parser
	timeout time.Duration
}

// New creates the HTTP handler of the chat and genai-response APIs.
// timeout bounds each pipeline run; zero disables it.
func New(l log.Logger, uc intent.UseCase, dates *datemath.Parser, timeout time.Duration) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		dates:   dates,
		timeout: timeout,
	}
}
