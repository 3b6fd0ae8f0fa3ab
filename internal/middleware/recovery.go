// Package middleware provides HTTP middleware functions.
package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/matchday/internal/apperr"
)

// Recovery returns a middleware that recovers from panics and logs them.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Errorw("panic recovered",
					"panic", rec,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"client_ip", c.ClientIP(),
					"user_id", UserID(c),
					"stack", string(debug.Stack()),
				)
				apperr.Abort(c, apperr.ErrInternal)
			}
		}()

		c.Next()
	}
}
