// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/matchday/internal/database/database"
	"github.com/festy23/matchday/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create inserts a new user. A taken email yields model.ErrEmailTaken.
	Create(ctx context.Context, user *model.User) error

	// GetByID finds user by id.
	GetByID(ctx context.Context, id string) (*model.User, error)

	// GetByEmail finds user by normalized email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// List returns all users ordered by name.
	List(ctx context.Context) ([]model.User, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) Create(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if database.IsDuplicateKey(err) {
			r.logger.Debugw("Create email already registered", "email", user.Email)
			return model.ErrEmailTaken
		}
		r.logger.Errorw("Create database error", "email", user.Email, "error", err)
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *repository) first(ctx context.Context, query string, arg string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where(query, arg).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("user lookup failed", "query", query, "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *repository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&users).Error
	if err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, err
	}
	return users, nil
}
