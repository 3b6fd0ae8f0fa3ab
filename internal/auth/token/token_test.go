package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festy23/matchday/internal/config"
)

var testStart = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func testConfig() config.AuthConfig {
	return config.AuthConfig{
		Secret:     "0123456789abcdef0123456789abcdef",
		TokenTTL:   24 * time.Hour,
		Issuer:     "matchday",
		BcryptCost: 4,
	}
}

func TestManager_IssueAndVerify(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testStart)
	m := NewManager(testConfig(), clock)

	signed, expiresAt, err := m.Issue("user-1")
	require.NoError(t, err)
	assert.Equal(t, testStart.Add(24*time.Hour), expiresAt)

	userID, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestManager_PayloadCarriesID(t *testing.T) {
	m := NewManager(testConfig(), clockwork.NewFakeClockAt(testStart))
	signed, _, err := m.Issue("user-1")
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(signed, claims)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["id"])
	assert.Equal(t, "matchday", claims["iss"])
}

func TestManager_Verify_Rejects(t *testing.T) {
	cfg := testConfig()

	sign := func(t *testing.T, method jwt.SigningMethod, key interface{}, claims Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	validClaims := func() Claims {
		return Claims{
			UserID: "user-1",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    cfg.Issuer,
				IssuedAt:  jwt.NewNumericDate(testStart),
				ExpiresAt: jwt.NewNumericDate(testStart.Add(time.Hour)),
			},
		}
	}

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "garbage",
			token: func(*testing.T) string { return "not-a-jwt" },
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte("another-secret-of-enough-length"), validClaims())
			},
		},
		{
			name: "wrong algorithm",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS512, []byte(cfg.Secret), validClaims())
			},
		},
		{
			name: "unsigned",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims())
			},
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				c := validClaims()
				c.Issuer = "someone-else"
				return sign(t, jwt.SigningMethodHS256, []byte(cfg.Secret), c)
			},
		},
		{
			name: "missing expiry",
			token: func(t *testing.T) string {
				c := validClaims()
				c.ExpiresAt = nil
				return sign(t, jwt.SigningMethodHS256, []byte(cfg.Secret), c)
			},
		},
		{
			name: "missing user id",
			token: func(t *testing.T) string {
				c := validClaims()
				c.UserID = ""
				return sign(t, jwt.SigningMethodHS256, []byte(cfg.Secret), c)
			},
		},
	}

	m := NewManager(cfg, clockwork.NewFakeClockAt(testStart))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := m.Verify(tt.token(t))
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Empty(t, userID)
		})
	}
}

func TestManager_Verify_Expiry(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testStart)
	m := NewManager(testConfig(), clock)

	signed, _, err := m.Issue("user-1")
	require.NoError(t, err)

	clock.Advance(23 * time.Hour)
	_, err = m.Verify(signed)
	assert.NoError(t, err, "still valid before the TTL elapses")

	clock.Advance(time.Hour + time.Second)
	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
