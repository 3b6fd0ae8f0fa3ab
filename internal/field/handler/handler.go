// Package handler provides HTTP handlers for field endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/matchday/internal/apperr"
	fieldModel "github.com/festy23/matchday/internal/field/model"
	"github.com/festy23/matchday/internal/field/service"
	"github.com/festy23/matchday/internal/middleware"
)

// Handler handles HTTP requests for field endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new field handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

func (h *Handler) reply(c *gin.Context, field *fieldModel.FieldResponse, err error) {
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, field)
}

// CreateField handles POST /fields. The caller becomes the first contact.
func (h *Handler) CreateField(c *gin.Context) {
	var req fieldModel.CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.RespondBindError(c, err)
		return
	}

	field, err := h.service.CreateField(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, field)
}

// ListFields handles GET /fields.
func (h *Handler) ListFields(c *gin.Context) {
	fields, err := h.service.ListFields(c.Request.Context())
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, fields)
}

// GetField handles GET /fields/:id.
func (h *Handler) GetField(c *gin.Context) {
	field, err := h.service.GetField(c.Request.Context(), c.Param("id"))
	h.reply(c, field, err)
}

// UpdateField handles PUT /fields/:id.
func (h *Handler) UpdateField(c *gin.Context) {
	var req fieldModel.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.RespondBindError(c, err)
		return
	}

	field, err := h.service.UpdateField(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	h.reply(c, field, err)
}

// DeleteField handles DELETE /fields/:id.
func (h *Handler) DeleteField(c *gin.Context) {
	if err := h.service.DeleteField(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
}

// AddContact handles POST /fields/:id/contacts.
func (h *Handler) AddContact(c *gin.Context) {
	var req fieldModel.AddContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.RespondBindError(c, err)
		return
	}

	field, err := h.service.AddContact(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Contact)
	h.reply(c, field, err)
}

// RemoveContact handles DELETE /fields/:id/contacts/:userId.
func (h *Handler) RemoveContact(c *gin.Context) {
	field, err := h.service.RemoveContact(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("userId"))
	h.reply(c, field, err)
}

// AddFacility handles POST /fields/:id/facilities.
func (h *Handler) AddFacility(c *gin.Context) {
	var req fieldModel.FacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.RespondBindError(c, err)
		return
	}

	field, err := h.service.AddFacility(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Facility)
	h.reply(c, field, err)
}

// RemoveFacility handles DELETE /fields/:id/facilities.
func (h *Handler) RemoveFacility(c *gin.Context) {
	var req fieldModel.FacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.RespondBindError(c, err)
		return
	}

	field, err := h.service.RemoveFacility(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Facility)
	h.reply(c, field, err)
}
