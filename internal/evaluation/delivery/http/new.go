package http

import (
	"card-consumption-assistant/internal/evaluation"
	"card-consumption-assistant/pkg/datemath"
	"card-consumption-assistant/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    evaluation.UseCase
	dates *datemath.Parser
}

// New creates the HTTP handler of the evaluate API.
func New(l log.Logger, uc evaluation.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
	}
}
