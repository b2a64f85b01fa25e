package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"bizdesk/internal/logger"
	"bizdesk/internal/requestid"
)

const requestIDKey = "requestID"

// RequestLogging returns a Gin middleware that logs each request with its
// request ID, method, path, status code, latency, and client IP. A valid
// incoming X-Request-ID is kept; otherwise a new one is generated.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(requestid.Header)
		if !requestid.IsValid(id) {
			id = requestid.New()
		}
		c.Set(requestIDKey, id)
		c.Request = c.Request.WithContext(requestid.WithContext(c.Request.Context(), id))
		c.Writer.Header().Set(requestid.Header, id)

		c.Next()

		logger.Get().Infow("request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

// RequestID returns the ID assigned by RequestLogging, or "".
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
