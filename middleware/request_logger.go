package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/webfolio/contact-backend/logger"
)

// RequestLogger logs one line per request through the application logger:
// method, path, status, latency, and the request ID if present.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.GetLogger().Infow("Request handled",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"request_id", c.GetString(RequestIDKey),
		)
	}
}
