package http

import (
	"github.com/gin-gonic/gin"

	"document-chatbot/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	appointments := rg.Group("/appointments")
	{
		appointments.GET("", h.List)
	}
}
