package middleware

import (
	"github.com/gin-gonic/gin"

	"document-chatbot/pkg/response"
)

// RateLimit rejects requests above the configured rate with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.Allow() {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
