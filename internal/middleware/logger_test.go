package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupLoggerRouter(logger *zap.SugaredLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(logger))
	r.GET("/teams/:id", func(c *gin.Context) {
		c.Set(userIDKey, "u1")
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	r.GET("/bad", func(c *gin.Context) {
		c.JSON(http.StatusConflict, gin.H{})
	})
	r.GET("/boom", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{})
	})
	return r
}

func TestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		level zapcore.Level
	}{
		{name: "success", path: "/teams/t1", level: zapcore.InfoLevel},
		{name: "client error", path: "/bad", level: zapcore.WarnLevel},
		{name: "server error", path: "/boom", level: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			router := setupLoggerRouter(zap.New(core).Sugar())

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, 1, logs.Len())
			assert.Equal(t, tt.level, logs.All()[0].Level)
		})
	}
}

func TestLogger_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := setupLoggerRouter(zap.New(core).Sugar())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/teams/t1?expand=1", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.Equal(t, "/teams/t1", fields["path"])
	assert.Equal(t, "/teams/:id", fields["route"])
	assert.Equal(t, "expand=1", fields["query"])
	assert.Equal(t, "u1", fields["user_id"])
}
