// Package config provides database configuration management.
package config

import (
	"fmt"
	"strconv"
	"strings"

	appconfig "github.com/festy23/matchday/internal/config"
	"github.com/festy23/matchday/pkg/retry"
)

// Config holds database connection configuration.
type Config struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string
}

// BuildDSN constructs PostgreSQL DSN string from configuration.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)
}

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		Host:     appconfig.GetEnv("DB_HOST", "localhost"),
		User:     appconfig.GetEnv("DB_USER", "postgres"),
		Password: appconfig.GetEnv("DB_PASSWORD", "postgres"),
		DBName:   appconfig.GetEnv("DB_NAME", "matchday"),
		Port:     appconfig.GetEnv("DB_PORT", "5432"),
		SSLMode:  appconfig.GetEnv("DB_SSLMODE", "disable"),
		TimeZone: appconfig.GetEnv("DB_TIMEZONE", "UTC"),
	}
}

// SanitizeError removes the password from connection error messages.
func SanitizeError(err error, cfg Config) error {
	if err == nil {
		return nil
	}
	errMsg := err.Error()
	safeDSN := BuildDSN(Config{
		Host: cfg.Host, User: cfg.User, Password: "***", DBName: cfg.DBName,
		Port: cfg.Port, SSLMode: cfg.SSLMode, TimeZone: cfg.TimeZone,
	})
	errMsg = strings.ReplaceAll(errMsg, BuildDSN(cfg), safeDSN)
	if cfg.Password != "" {
		errMsg = strings.ReplaceAll(errMsg, cfg.Password, "***")
	}
	return fmt.Errorf("failed to connect to database: %s", errMsg)
}

// LoadRetryConfigFromEnv loads the startup connection retry policy.
func LoadRetryConfigFromEnv() retry.Config {
	cfg := retry.PostgresConfig()
	cfg.MaxAttempts = appconfig.GetEnvInt("DB_RETRY_MAX_ATTEMPTS", cfg.MaxAttempts)
	cfg.InitialDelay = appconfig.GetEnvDuration("DB_RETRY_INITIAL_DELAY", cfg.InitialDelay)
	cfg.MaxDelay = appconfig.GetEnvDuration("DB_RETRY_MAX_DELAY", cfg.MaxDelay)
	if v, err := strconv.ParseFloat(appconfig.GetEnv("DB_RETRY_MULTIPLIER", ""), 64); err == nil {
		cfg.Multiplier = v
	}
	return cfg
}
