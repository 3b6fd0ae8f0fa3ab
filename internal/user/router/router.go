// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/matchday/internal/user/handler"
	"github.com/festy23/matchday/internal/user/repository"
	"github.com/festy23/matchday/internal/user/service"
)

// RegisterRoutes registers user module routes on an authenticated group.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/users", h.ListUsers)
	r.GET("/users/:id", h.GetUser)
}
