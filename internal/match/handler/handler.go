// Package handler provides HTTP handlers for match endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/matchday/internal/apperr"
	matchModel "github.com/festy23/matchday/internal/match/model"
	"github.com/festy23/matchday/internal/match/service"
	"github.com/festy23/matchday/internal/middleware"
)

// Handler handles HTTP requests for match endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new match handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateMatch handles POST /matches. The caller's own team plays at home.
func (h *Handler) CreateMatch(c *gin.Context) {
	var req matchModel.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.RespondBindError(c, err)
		return
	}

	match, err := h.service.CreateMatch(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, match)
}

// ListMatches handles GET /matches.
func (h *Handler) ListMatches(c *gin.Context) {
	matches, err := h.service.ListMatches(c.Request.Context())
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// GetMatch handles GET /matches/:id.
func (h *Handler) GetMatch(c *gin.Context) {
	match, err := h.service.GetMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// UpdateMatch handles PUT /matches/:id.
func (h *Handler) UpdateMatch(c *gin.Context) {
	var req matchModel.UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.RespondBindError(c, err)
		return
	}

	match, err := h.service.UpdateMatch(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// DeleteMatch handles DELETE /matches/:id.
func (h *Handler) DeleteMatch(c *gin.Context) {
	if err := h.service.DeleteMatch(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
}
