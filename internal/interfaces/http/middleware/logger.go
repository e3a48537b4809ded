package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"stone-shop.backend/pkg/logger"
)

// LoggerMiddleware logs each HTTP request through the structured logger.
// The request ID is picked up from the context set by RequestIDMiddleware.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		logger.LogRequest(c.Request.Context(), c.Request.Method, path, c.Writer.Status(), latency, c.ClientIP())
	}
}
