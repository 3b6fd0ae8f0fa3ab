// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/matchday/internal/team/handler"
	teamModel "github.com/festy23/matchday/internal/team/model"
	"github.com/festy23/matchday/internal/team/repository"
	"github.com/festy23/matchday/internal/team/service"
	userRepository "github.com/festy23/matchday/internal/user/repository"
)

// RegisterRoutes registers team module routes on an authenticated group.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(repository.New(db, logger), userRepository.New(db, logger), logger)
	h := handler.New(svc, logger)

	teams := r.Group("/teams")
	teams.POST("", h.CreateTeam)
	teams.GET("", h.ListTeams)
	teams.GET("/:id", h.GetTeam)
	teams.PUT("/:id", h.UpdateTeam)
	teams.DELETE("/:id", h.DeleteTeam)

	teams.POST("/:id/players", h.AddMember(teamModel.RolePlayer))
	teams.DELETE("/:id/players/:userId", h.RemoveMember(teamModel.RolePlayer))
	teams.POST("/:id/spareplayers", h.AddMember(teamModel.RoleSpare))
	teams.DELETE("/:id/spareplayers/:userId", h.RemoveMember(teamModel.RoleSpare))
}
