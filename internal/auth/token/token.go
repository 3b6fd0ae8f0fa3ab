// Package token issues and verifies the signed identity tokens carried as
// bearer credentials.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"

	"github.com/festy23/matchday/internal/apperr"
	"github.com/festy23/matchday/internal/config"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = apperr.New(apperr.KindUnauthenticated, "UNAUTHENTICATED", "invalid or expired token")

// Claims is the token payload: {"id": <userId>} plus the registered claims.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	clock  clockwork.Clock
}

// NewManager creates a token manager. clock drives issuance and expiry checks.
func NewManager(cfg config.AuthConfig, clock clockwork.Clock) *Manager {
	return &Manager{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TokenTTL,
		issuer: cfg.Issuer,
		clock:  clock,
	}
}

// Issue signs a token for userID and returns it with its expiry time.
func (m *Manager) Issue(userID string) (string, time.Time, error) {
	now := m.clock.Now()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature, algorithm, issuer and expiry and returns the user id.
// Every failure is reported as ErrInvalidToken wrapping the cause.
func (m *Manager) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.clock.Now),
	)
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}
	if claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
