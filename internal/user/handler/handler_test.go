package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/matchday/internal/apperr"
	"github.com/festy23/matchday/internal/user/model"
	"github.com/festy23/matchday/internal/user/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetUser(ctx context.Context, id string) (*model.UserResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserResponse), args.Error(1)
}

func (m *mockService) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserResponse), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/users", h.ListUsers)
	router.GET("/users/:id", h.GetUser)
	return router
}

func TestHandler_GetUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))
		mockSvc.On("GetUser", mock.Anything, "u1").
			Return(&model.UserResponse{ID: "u1", Email: "a@club.test", Name: "Alice"}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/u1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"u1","email":"a@club.test","name":"Alice"}`, w.Body.String())
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))
		mockSvc.On("GetUser", mock.Anything, "ghost").Return(nil, model.ErrUserNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/ghost", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp apperr.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "USER_NOT_FOUND", resp.Error.Code)
	})
}

func TestHandler_ListUsers(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))
		mockSvc.On("ListUsers", mock.Anything).Return([]model.UserResponse{{ID: "u1", Name: "Ana"}}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []model.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
	})

	t.Run("internal error is not leaked", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))
		mockSvc.On("ListUsers", mock.Anything).Return(nil, errors.New("pq: relation \"users\" does not exist"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "relation")
		assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	})
}
