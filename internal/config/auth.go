package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// minSecretLength is the shortest accepted HMAC signing secret in bytes.
const minSecretLength = 16

// AuthConfig holds token issuance and password hashing configuration.
type AuthConfig struct {
	// Secret is the HMAC key used to sign identity tokens.
	Secret string
	// TokenTTL is how long an issued token stays valid.
	TokenTTL time.Duration
	// Issuer is written to the iss claim and checked on verification.
	Issuer string
	// BcryptCost is the bcrypt work factor for stored password hashes.
	BcryptCost int
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		Secret:     GetEnv("JWT_SECRET", ""),
		TokenTTL:   GetEnvDuration("JWT_TTL", 24*time.Hour),
		Issuer:     GetEnv("JWT_ISSUER", "matchday"),
		BcryptCost: GetEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if len(c.Secret) < minSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", minSecretLength)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TokenTTL must be greater than 0")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BcryptCost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
