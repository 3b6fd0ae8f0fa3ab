// Package database provides PostgreSQL connection management for the club store.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/festy23/matchday/internal/database/config"
	"github.com/festy23/matchday/internal/database/pool"
	"github.com/festy23/matchday/pkg/retry"
)

// connectTimeout bounds the whole retried connection attempt.
const connectTimeout = 2 * time.Minute

// New creates a new database connection using environment variables.
func New(logger *zap.SugaredLogger) (*gorm.DB, error) {
	return NewWithConfig(config.LoadConfigFromEnv(), config.LoadRetryConfigFromEnv(), logger)
}

// NewWithConfig opens a PostgreSQL connection, retrying transient failures with
// exponential backoff, and configures the connection pool.
func NewWithConfig(cfg config.Config, retryCfg retry.Config, logger *zap.SugaredLogger) (*gorm.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	retryCfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		logger.Warnw("database connection failed, retrying",
			"attempt", attempt,
			"delay", delay,
			"error", config.SanitizeError(err, cfg),
		)
	}

	dsn := config.BuildDSN(cfg)
	db, err := retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		db, err := Open(postgres.Open(dsn))
		if err != nil && isMisconfigured(err) {
			return nil, retry.Permanent(err)
		}
		return db, err
	})
	if err != nil {
		return nil, config.SanitizeError(err, cfg)
	}

	if err := pool.SetupConnectionPool(db, pool.LoadPoolConfigFromEnv()); err != nil {
		return nil, fmt.Errorf("failed to setup connection pool: %w", err)
	}

	logger.Infow("connected to database", "host", cfg.Host, "database", cfg.DBName)
	return db, nil
}

// isMisconfigured reports failures that waiting will not fix.
func isMisconfigured(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "password authentication failed") ||
		(strings.Contains(msg, "database \"") && strings.Contains(msg, "does not exist"))
}

// Open opens a gorm connection with the settings every repository relies on:
// driver errors are translated (gorm.ErrDuplicatedKey, gorm.ErrForeignKeyViolated)
// and SQL statement logging is silenced.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close gracefully closes database connection.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// GetStats returns database connection pool statistics.
func GetStats(db *gorm.DB) (*sql.DBStats, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	stats := sqlDB.Stats()
	return &stats, nil
}
