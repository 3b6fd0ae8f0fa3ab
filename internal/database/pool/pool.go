// Package pool sizes the sql.DB behind a gorm connection.
package pool

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	appconfig "github.com/festy23/matchday/internal/config"
)

// Config is the connection pool shape applied to sql.DB.
type Config struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultPoolConfig suits a single API instance against one Postgres.
func DefaultPoolConfig() Config {
	return Config{
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
	}
}

// LoadPoolConfigFromEnv overrides the defaults with DB_MAX_OPEN_CONNS,
// DB_MAX_IDLE_CONNS, DB_CONN_MAX_LIFETIME and DB_CONN_MAX_IDLE_TIME.
func LoadPoolConfigFromEnv() Config {
	cfg := DefaultPoolConfig()
	cfg.MaxOpenConns = appconfig.GetEnvInt("DB_MAX_OPEN_CONNS", cfg.MaxOpenConns)
	cfg.MaxIdleConns = appconfig.GetEnvInt("DB_MAX_IDLE_CONNS", cfg.MaxIdleConns)
	cfg.ConnMaxLifetime = appconfig.GetEnvDuration("DB_CONN_MAX_LIFETIME", cfg.ConnMaxLifetime)
	cfg.ConnMaxIdleTime = appconfig.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", cfg.ConnMaxIdleTime)
	return cfg
}

// Validate rejects pool sizes sql.DB would silently clamp.
func (c Config) Validate() error {
	switch {
	case c.MaxOpenConns <= 0:
		return errors.New("MaxOpenConns must be greater than 0")
	case c.MaxIdleConns < 0:
		return errors.New("MaxIdleConns must be non-negative")
	case c.MaxIdleConns > c.MaxOpenConns:
		return fmt.Errorf("MaxIdleConns (%d) cannot be greater than MaxOpenConns (%d)",
			c.MaxIdleConns, c.MaxOpenConns)
	}
	return nil
}

// SetupConnectionPool validates cfg and applies it to db's sql.DB.
func SetupConnectionPool(db *gorm.DB, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	return nil
}
