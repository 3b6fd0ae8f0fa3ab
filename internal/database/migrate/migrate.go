// Package migrate applies the versioned SQL schema with golang-migrate.
package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appconfig "github.com/festy23/matchday/internal/config"
)

// GetMigrationsPath returns the migrations directory, MIGRATIONS_PATH or "migrations".
func GetMigrationsPath() string {
	return appconfig.GetEnv("MIGRATIONS_PATH", "migrations")
}

// Migrate applies every pending migration found in dir. An up-to-date schema is not an error.
func Migrate(db *gorm.DB, dir string, logger *zap.SugaredLogger) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	migrationsPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}
	if _, statErr := os.Stat(migrationsPath); os.IsNotExist(statErr) {
		return fmt.Errorf("migrations directory does not exist: %s", migrationsPath)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		logger.Debug("database schema is up to date")
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	logger.Infow("database migrations applied", "version", version, "dirty", dirty)
	return nil
}
