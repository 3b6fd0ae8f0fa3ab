// Package middleware provides HTTP middleware functions.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger returns a middleware that logs every HTTP request once it completes.
// 5xx responses log at error level, 4xx at warn, everything else at info.
func Logger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		fields := []interface{}{
			"status", status,
			"method", c.Request.Method,
			"path", path,
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if route := c.FullPath(); route != "" {
			fields = append(fields, "route", route)
		}
		if raw != "" {
			fields = append(fields, "query", raw)
		}
		if userID := UserID(c); userID != "" {
			fields = append(fields, "user_id", userID)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			logger.Errorw("HTTP request", fields...)
		case status >= 400:
			logger.Warnw("HTTP request", fields...)
		default:
			logger.Infow("HTTP request", fields...)
		}
	}
}
