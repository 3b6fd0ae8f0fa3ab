package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/matchday/internal/user/model"
	"github.com/festy23/matchday/internal/user/repository"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

var _ repository.Repository = (*mockRepository)(nil)

func TestService_GetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())
		repo.On("GetByID", ctx, "u1").Return(&model.User{ID: "u1", Email: "a@club.test", Name: "Alice", PasswordHash: "h"}, nil)

		got, err := svc.GetUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, &model.UserResponse{ID: "u1", Email: "a@club.test", Name: "Alice"}, got)
		repo.AssertExpectations(t)
	})

	t.Run("empty id", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())

		_, err := svc.GetUser(ctx, "")
		assert.ErrorIs(t, err, model.ErrInvalidUserID)
		repo.AssertNotCalled(t, "GetByID")
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())
		repo.On("GetByID", ctx, "nope").Return(nil, model.ErrUserNotFound)

		_, err := svc.GetUser(ctx, "nope")
		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})
}

func TestService_ListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())
		repo.On("List", ctx).Return([]model.User{{ID: "u1", Name: "Ana"}, {ID: "u2", Name: "Bea"}}, nil)

		got, err := svc.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "u2", got[1].ID)
	})

	t.Run("database error", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())
		repo.On("List", ctx).Return(nil, errors.New("connection reset"))

		_, err := svc.ListUsers(ctx)
		assert.EqualError(t, err, "connection reset")
	})
}
