// Package health reports whether the service can reach its database.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/matchday/internal/database/database"
)

const checkTimeout = 2 * time.Second

// Status values reported by Check.
const (
	StatusOK        = "ok"
	StatusUnhealthy = "unhealthy"
)

// Pinger probes a dependency.
type Pinger func(ctx context.Context) error

// Handler serves GET /health.
type Handler struct {
	ping   Pinger
	logger *zap.SugaredLogger
}

// New creates a health handler that pings db.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return NewWithPinger(func(ctx context.Context) error {
		return database.HealthCheck(ctx, db)
	}, logger)
}

// NewWithPinger creates a health handler around an arbitrary probe.
func NewWithPinger(ping Pinger, logger *zap.SugaredLogger) *Handler {
	return &Handler{ping: ping, logger: logger}
}

// Response is the body of GET /health.
type Response struct {
	Status string `json:"status"`
}

// Check answers 200 {"status":"ok"} or 503 {"status":"unhealthy"}.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	c.Header("Cache-Control", "no-store")
	if err := h.ping(ctx); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{Status: StatusUnhealthy})
		return
	}
	c.JSON(http.StatusOK, Response{Status: StatusOK})
}
