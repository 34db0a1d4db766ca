package http

import (
	"github.com/gin-gonic/gin"

	"document-chatbot/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Chat is
// rate limited since every message can fan out to embedding and LLM
// calls.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	messages := rg.Group("/chat")
	{
		messages.POST("/messages", mw.RateLimit(), h.SendMessage)
	}
}
