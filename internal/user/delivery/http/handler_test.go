package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertwachen/fritterfrontend/internal/user/mocks"
	User "github.com/robertwachen/fritterfrontend/internal/user/model"
	"github.com/robertwachen/fritterfrontend/internal/user/repository"
	"github.com/robertwachen/fritterfrontend/internal/user/usecase"
	"github.com/robertwachen/fritterfrontend/pkg/httpserver"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T) (*gin.Engine, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockUserRepository(ctrl)
	uc := usecase.NewUserUsecase(mockRepo, logger.Logger{})

	r := httpserver.NewRouter(logger.Logger{}, prometheus.NewRegistry())
	NewUserHandler(uc, logger.Logger{}).RegisterRoutes(r.Group("/api"))
	return r, mockRepo
}

func do(r *gin.Engine, method, target, body string, viewer uuid.UUID) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if viewer != uuid.Nil {
		req.Header.Set(httpserver.ViewerHeader, viewer.String())
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserHandler(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		r, mockRepo := newRouter(t)
		mockRepo.EXPECT().UsernameExists(gomock.Any(), "alice").Return(false, nil)
		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *User.User) error {
				u.ID = uuid.New()
				return nil
			})

		w := do(r, http.MethodPost, "/api/users", `{"username":"alice","displayName":"Alice"}`, uuid.Nil)
		require.Equal(t, http.StatusCreated, w.Code)

		var body struct {
			User struct {
				Username    string `json:"username"`
				DisplayName string `json:"displayName"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "alice", body.User.Username)
		assert.Equal(t, "Alice", body.User.DisplayName)
	})

	t.Run("register taken username", func(t *testing.T) {
		r, mockRepo := newRouter(t)
		mockRepo.EXPECT().UsernameExists(gomock.Any(), "alice").Return(true, nil)

		w := do(r, http.MethodPost, "/api/users", `{"username":"alice","displayName":"Alice"}`, uuid.Nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("get unknown user", func(t *testing.T) {
		r, mockRepo := newRouter(t)
		mockRepo.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(nil, repository.ErrUserNotFound)

		w := do(r, http.MethodGet, "/api/users/ghost", "", uuid.Nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("me", func(t *testing.T) {
		r, mockRepo := newRouter(t)
		viewer := uuid.New()
		mockRepo.EXPECT().GetUserByID(gomock.Any(), viewer).
			Return(&User.User{ID: viewer, Username: "alice", Name: "Alice"}, nil)

		w := do(r, http.MethodGet, "/api/users/me", "", viewer)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"alice"`)
	})

	t.Run("rename requires a viewer", func(t *testing.T) {
		r, _ := newRouter(t)

		w := do(r, http.MethodPatch, "/api/users", `{"displayName":"Al"}`, uuid.Nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rename", func(t *testing.T) {
		r, mockRepo := newRouter(t)
		viewer := uuid.New()
		mockRepo.EXPECT().UpdateUserDisplayName(gomock.Any(), viewer, "Al").Return(nil)

		w := do(r, http.MethodPatch, "/api/users", `{"displayName":"Al"}`, viewer)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
