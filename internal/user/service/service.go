// Package service provides business logic layer for user module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/festy23/matchday/internal/user/model"
	"github.com/festy23/matchday/internal/user/repository"
)

// Service defines the interface for user read operations.
type Service interface {
	// GetUser returns the public projection of one user.
	GetUser(ctx context.Context, id string) (*model.UserResponse, error)

	// ListUsers returns every user ordered by name.
	ListUsers(ctx context.Context) ([]model.UserResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) GetUser(ctx context.Context, id string) (*model.UserResponse, error) {
	if id == "" {
		return nil, model.ErrInvalidUserID
	}
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.NewUserResponse(user), nil
}

func (s *service) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debugw("ListUsers completed", "count", len(users))
	return model.NewUserResponses(users), nil
}
