// Package handler provides HTTP handlers for registration and login.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/matchday/internal/apperr"
	authModel "github.com/festy23/matchday/internal/auth/model"
	"github.com/festy23/matchday/internal/auth/service"
)

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register handles POST /auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req authModel.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.RespondBindError(c, err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req authModel.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.RespondBindError(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
