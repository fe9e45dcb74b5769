package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the evaluate API onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/evaluate", h.Evaluate)
}
