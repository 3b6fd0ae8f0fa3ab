// Package server assembles the HTTP router from the module routers.
package server

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authRouter "github.com/festy23/matchday/internal/auth/router"
	"github.com/festy23/matchday/internal/auth/token"
	"github.com/festy23/matchday/internal/config"
	fieldRouter "github.com/festy23/matchday/internal/field/router"
	"github.com/festy23/matchday/internal/health"
	matchRouter "github.com/festy23/matchday/internal/match/router"
	"github.com/festy23/matchday/internal/middleware"
	teamRouter "github.com/festy23/matchday/internal/team/router"
	userRepository "github.com/festy23/matchday/internal/user/repository"
	userRouter "github.com/festy23/matchday/internal/user/router"
)

// New builds the router. /health and /auth are public; everything else
// requires a bearer token issued by tokens.
func New(cfg config.Config, db *gorm.DB, tokens *token.Manager, logger *zap.SugaredLogger) (*gin.Engine, error) {
	useJSONFieldNames()

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	r.GET("/health", health.New(db, logger).Check)

	if err := authRouter.RegisterRoutes(r, db, tokens, cfg.Auth.BcryptCost, logger); err != nil {
		return nil, err
	}

	api := r.Group("")
	api.Use(middleware.Auth(tokens, userRepository.New(db, logger), logger))
	userRouter.RegisterRoutes(api, db, logger)
	teamRouter.RegisterRoutes(api, db, logger)
	fieldRouter.RegisterRoutes(api, db, logger)
	matchRouter.RegisterRoutes(api, db, logger)

	return r, nil
}

// useJSONFieldNames makes validation errors name the JSON key instead of the Go field.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}
