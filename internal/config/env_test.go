package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// setEnv sets variables for the duration of the test. An empty value reads as unset.
func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("MATCHDAY_TEST_STR", "")
	assert.Equal(t, "fallback", GetEnv("MATCHDAY_TEST_STR", "fallback"))

	t.Setenv("MATCHDAY_TEST_STR", "set")
	assert.Equal(t, "set", GetEnv("MATCHDAY_TEST_STR", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 7},
		{"42", 42},
		{"-3", -3},
		{"forty", 7},
		{"4.5", 7},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("MATCHDAY_TEST_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("MATCHDAY_TEST_INT", 7))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"", time.Second},
		{"250ms", 250 * time.Millisecond},
		{"1h30m", 90 * time.Minute},
		{"30", time.Second},
		{"soon", time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("MATCHDAY_TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, GetEnvDuration("MATCHDAY_TEST_DURATION", time.Second))
		})
	}
}
