package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/matchday/internal/database/dbtest"
	"github.com/festy23/matchday/internal/user/model"
)

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := dbtest.New(t)
		repo := New(db, zap.NewNop().Sugar())

		err := repo.Create(ctx, &model.User{ID: "u1", Email: "alice@club.test", Name: "Alice", PasswordHash: "h"})
		require.NoError(t, err)

		got, err := repo.GetByEmail(ctx, "alice@club.test")
		require.NoError(t, err)
		assert.Equal(t, "u1", got.ID)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db := dbtest.New(t)
		repo := New(db, zap.NewNop().Sugar())

		require.NoError(t, repo.Create(ctx, &model.User{ID: "u1", Email: "alice@club.test", Name: "Alice", PasswordHash: "h"}))
		err := repo.Create(ctx, &model.User{ID: "u2", Email: "alice@club.test", Name: "Other", PasswordHash: "h"})

		assert.ErrorIs(t, err, model.ErrEmailTaken)
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	repo := New(db, zap.NewNop().Sugar())
	dbtest.CreateUser(t, db, "u1", "Alice")

	t.Run("found", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, model.ErrUserNotFound)
		assert.Nil(t, got)
	})
}

func TestRepository_GetByEmail_NotFound(t *testing.T) {
	repo := New(dbtest.New(t), zap.NewNop().Sugar())

	_, err := repo.GetByEmail(context.Background(), "nobody@club.test")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("ordered by name", func(t *testing.T) {
		db := dbtest.New(t)
		repo := New(db, zap.NewNop().Sugar())
		dbtest.CreateUser(t, db, "u1", "Carla")
		dbtest.CreateUser(t, db, "u2", "Ana")
		dbtest.CreateUser(t, db, "u3", "Bruno")

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, []string{"Ana", "Bruno", "Carla"}, []string{users[0].Name, users[1].Name, users[2].Name})
	})

	t.Run("empty", func(t *testing.T) {
		users, err := New(dbtest.New(t), zap.NewNop().Sugar()).List(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}
