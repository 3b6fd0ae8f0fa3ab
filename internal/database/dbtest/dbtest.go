// Package dbtest opens throwaway SQLite databases carrying the full schema for
// repository and service tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festy23/matchday/internal/database/database"
	fieldModel "github.com/festy23/matchday/internal/field/model"
	matchModel "github.com/festy23/matchday/internal/match/model"
	teamModel "github.com/festy23/matchday/internal/team/model"
	userModel "github.com/festy23/matchday/internal/user/model"
)

// New returns an in-memory SQLite database with foreign keys enforced and all
// tables migrated. The connection is closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open("file::memory:?_foreign_keys=on"))
	require.NoError(t, err)

	// Every connection to :memory: is a separate database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&userModel.User{},
		&teamModel.Team{},
		&teamModel.Member{},
		&fieldModel.Field{},
		&fieldModel.Contact{},
		&fieldModel.Facility{},
		&matchModel.Match{},
	))
	return db
}

// CreateUser inserts a user with a placeholder password hash.
func CreateUser(t testing.TB, db *gorm.DB, id, name string) *userModel.User {
	t.Helper()
	u := &userModel.User{
		ID:           id,
		Email:        id + "@club.test",
		Name:         name,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}
