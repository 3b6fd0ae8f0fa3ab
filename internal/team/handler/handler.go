// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/matchday/internal/apperr"
	"github.com/festy23/matchday/internal/middleware"
	teamModel "github.com/festy23/matchday/internal/team/model"
	"github.com/festy23/matchday/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTeam handles POST /teams. The caller becomes the coach.
func (h *Handler) CreateTeam(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.RespondBindError(c, err)
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// ListTeams handles GET /teams.
func (h *Handler) ListTeams(c *gin.Context) {
	teams, err := h.service.ListTeams(c.Request.Context())
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/:id.
func (h *Handler) GetTeam(c *gin.Context) {
	team, err := h.service.GetTeam(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PUT /teams/:id.
func (h *Handler) UpdateTeam(c *gin.Context) {
	var req teamModel.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.RespondBindError(c, err)
		return
	}

	team, err := h.service.UpdateTeam(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id.
func (h *Handler) DeleteTeam(c *gin.Context) {
	if err := h.service.DeleteTeam(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
}

// AddMember returns the handler for POST /teams/:id/players or /teams/:id/spareplayers.
func (h *Handler) AddMember(role teamModel.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req teamModel.AddPlayerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.RespondBindError(c, err)
			return
		}

		team, err := h.service.AddMember(c.Request.Context(), middleware.UserID(c), c.Param("id"), role, req.Player)
		if err != nil {
			apperr.Respond(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, team)
	}
}

// RemoveMember returns the handler for DELETE /teams/:id/{players|spareplayers}/:userId.
func (h *Handler) RemoveMember(role teamModel.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		team, err := h.service.RemoveMember(c.Request.Context(), middleware.UserID(c), c.Param("id"), role, c.Param("userId"))
		if err != nil {
			apperr.Respond(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, team)
	}
}
