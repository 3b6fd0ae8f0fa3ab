// Package router provides field module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/matchday/internal/field/handler"
	"github.com/festy23/matchday/internal/field/repository"
	"github.com/festy23/matchday/internal/field/service"
	userRepository "github.com/festy23/matchday/internal/user/repository"
)

// RegisterRoutes registers field module routes on an authenticated group.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(repository.New(db, logger), userRepository.New(db, logger), logger)
	h := handler.New(svc, logger)

	fields := r.Group("/fields")
	fields.POST("", h.CreateField)
	fields.GET("", h.ListFields)
	fields.GET("/:id", h.GetField)
	fields.PUT("/:id", h.UpdateField)
	fields.DELETE("/:id", h.DeleteField)

	fields.POST("/:id/contacts", h.AddContact)
	fields.DELETE("/:id/contacts/:userId", h.RemoveContact)
	fields.POST("/:id/facilities", h.AddFacility)
	fields.DELETE("/:id/facilities", h.RemoveFacility)
}
