package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string
	// Format is json or console.
	Format string
	// Output is stdout, stderr or a file path.
	Output string
}

// LoadLoggerConfigFromEnv loads LOG_LEVEL, LOG_FORMAT and LOG_OUTPUT.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:  GetEnv("LOG_LEVEL", "info"),
		Format: GetEnv("LOG_FORMAT", "json"),
		Output: GetEnv("LOG_OUTPUT", "stdout"),
	}
}

// Validate validates logger configuration.
func (c LoggerConfig) Validate() error {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil || level > zapcore.ErrorLevel {
		return fmt.Errorf("invalid log level: %s (must be: debug, info, warn, error)", c.Level)
	}

	switch c.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s (must be: json, console)", c.Format)
	}
	return nil
}

// IsProduction reports whether the production zap preset applies.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.Level != "debug"
}
