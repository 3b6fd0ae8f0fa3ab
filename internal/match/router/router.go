// Package router provides match module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	fieldRepository "github.com/festy23/matchday/internal/field/repository"
	"github.com/festy23/matchday/internal/match/handler"
	"github.com/festy23/matchday/internal/match/repository"
	"github.com/festy23/matchday/internal/match/service"
	teamRepository "github.com/festy23/matchday/internal/team/repository"
)

// RegisterRoutes registers match module routes on an authenticated group.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(
		repository.New(db, logger),
		teamRepository.New(db, logger),
		fieldRepository.New(db, logger),
		logger,
	)
	h := handler.New(svc, logger)

	matches := r.Group("/matches")
	matches.POST("", h.CreateMatch)
	matches.GET("", h.ListMatches)
	matches.GET("/:id", h.GetMatch)
	matches.PUT("/:id", h.UpdateMatch)
	matches.DELETE("/:id", h.DeleteMatch)
}
