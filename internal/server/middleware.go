package server

import (
	"github.com/gin-gonic/gin"
)

const requestIDKey = "request_id"

// RequestID assigns every request a correlation id, echoed in the
// X-Request-ID response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := newRequestID()
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	if id, ok := c.Get(requestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return newRequestID()
}

// APIKeyAuth rejects requests whose x-api-key header does not match the
// configured key. An empty configured key disables authentication.
func APIKeyAuth(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" {
			c.Next()
			return
		}
		if c.GetHeader("x-api-key") != expected {
			respondError(c, requestID(c), "API_KEY_INVALID", "Invalid or missing API key", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
