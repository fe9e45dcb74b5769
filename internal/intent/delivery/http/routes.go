package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the conversational APIs onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/chat", h.Chat)
	rg.POST("/genai-response", h.GenaiResponse)
}
