// Package router provides auth module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/matchday/internal/auth/handler"
	"github.com/festy23/matchday/internal/auth/service"
	userRepository "github.com/festy23/matchday/internal/user/repository"
)

// RegisterRoutes registers the public auth routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, tokens service.TokenIssuer, bcryptCost int, logger *zap.SugaredLogger) error {
	svc, err := service.New(userRepository.New(db, logger), tokens, bcryptCost, logger)
	if err != nil {
		return err
	}
	h := handler.New(svc, logger)

	auth := r.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	return nil
}
