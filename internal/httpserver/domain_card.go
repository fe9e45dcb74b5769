package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	evaluationHTTP "card-consumption-assistant/internal/evaluation/delivery/http"
	intentHTTP "card-consumption-assistant/internal/intent/delivery/http"
)

// setupCardConsumptionDomain registers the chat, genai-response and evaluate APIs.
// The use cases are built once in main and shared by every request.
func (srv HTTPServer) setupCardConsumptionDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := intentHTTP.New(srv.l, srv.intentUC, srv.dates, srv.requestTimeout)
	intentHTTP.RegisterRoutes(api, h)

	if srv.evaluationUC != nil {
		eh := evaluationHTTP.New(srv.l, srv.evaluationUC, srv.dates)
		evaluationHTTP.RegisterRoutes(api, eh)
	} else {
		srv.l.Warnf(ctx, "Evaluation store not configured, skipping POST /api/card-consumption/evaluate")
	}

	srv.l.Infof(ctx, "Card consumption domain registered")
	return nil
}
