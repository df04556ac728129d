package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"simorgh/pkg/logger"
)

// Logger middleware logs HTTP requests with timing and status.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		entry := log.WithContext(c.Request.Context())
		keysAndValues := []any{
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"status", status,
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
		}
		if errs := c.Errors.ByType(gin.ErrorTypePrivate).String(); errs != "" {
			keysAndValues = append(keysAndValues, "error", errs)
		}

		if status >= 500 {
			entry.Warnw("http request", keysAndValues...)
			return
		}
		entry.Infow("http request", keysAndValues...)
	}
}
