// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/matchday/internal/apperr"
	"github.com/festy23/matchday/internal/user/service"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListUsers handles GET /users.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /users/:id.
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
