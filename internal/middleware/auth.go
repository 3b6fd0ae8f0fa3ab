package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/matchday/internal/apperr"
	userModel "github.com/festy23/matchday/internal/user/model"
)

const userIDKey = "user_id"

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserFinder confirms that a token's subject still exists.
type UserFinder interface {
	GetByID(ctx context.Context, id string) (*userModel.User, error)
}

// Auth returns a middleware that requires "Authorization: Bearer <token>" and
// stores the resolved user id in the context.
func Auth(verifier TokenVerifier, users UserFinder, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, raw, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
			apperr.Abort(c, apperr.ErrUnauthenticated)
			return
		}

		userID, err := verifier.Verify(strings.TrimSpace(raw))
		if err != nil {
			logger.Debugw("bearer token rejected", "path", c.Request.URL.Path, "error", err)
			apperr.Abort(c, apperr.ErrUnauthenticated)
			return
		}

		if _, err := users.GetByID(c.Request.Context(), userID); err != nil {
			if errors.Is(err, userModel.ErrUserNotFound) {
				logger.Debugw("token subject no longer exists", "user_id", userID)
				apperr.Abort(c, apperr.ErrUnauthenticated)
				return
			}
			apperr.Respond(c, logger, err)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id, or "" outside Auth.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
