// Package service implements registration and credential verification.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	authModel "github.com/festy23/matchday/internal/auth/model"
	userModel "github.com/festy23/matchday/internal/user/model"
	userRepository "github.com/festy23/matchday/internal/user/repository"
)

// TokenIssuer signs identity tokens.
type TokenIssuer interface {
	Issue(userID string) (string, time.Time, error)
}

// Service defines registration and login operations.
type Service interface {
	// Register creates a user with a bcrypt password hash.
	Register(ctx context.Context, req *authModel.RegisterRequest) (*userModel.UserResponse, error)

	// Login verifies credentials and issues a token.
	Login(ctx context.Context, req *authModel.LoginRequest) (*authModel.LoginResponse, error)
}

type service struct {
	users      userRepository.Repository
	tokens     TokenIssuer
	bcryptCost int
	dummyHash  []byte
	logger     *zap.SugaredLogger
}

// New creates a new auth service instance.
func New(users userRepository.Repository, tokens TokenIssuer, bcryptCost int, logger *zap.SugaredLogger) (Service, error) {
	// Compared against for unknown emails so that both failure paths cost one bcrypt run.
	dummy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare password hasher: %w", err)
	}
	return &service{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		dummyHash:  dummy,
		logger:     logger,
	}, nil
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Register(ctx context.Context, req *authModel.RegisterRequest) (*userModel.UserResponse, error) {
	email := NormalizeEmail(req.Email)
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, authModel.ErrInvalidEmail
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, authModel.ErrInvalidName
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &userModel.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("user registered", "user_id", user.ID)
	return userModel.NewUserResponse(user), nil
}

func (s *service) Login(ctx context.Context, req *authModel.LoginRequest) (*authModel.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
			return nil, authModel.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Debugw("login rejected", "user_id", user.ID)
		return nil, authModel.ErrInvalidCredentials
	}

	signed, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &authModel.LoginResponse{Token: signed, ExpiresAt: expiresAt.UTC()}, nil
}
