package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/robertwachen/fritterfrontend/pkg/errors"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "test_total", Help: "test"}))
	return NewRouter(logger.Logger{}, reg)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test_total")
}

func TestViewer(t *testing.T) {
	r := newTestRouter()
	var got uuid.UUID
	r.GET("/whoami", func(c *gin.Context) {
		got = Viewer(c)
		c.Status(http.StatusNoContent)
	})

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(ViewerHeader, id.String())
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, id, got)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(ViewerHeader, "not-a-uuid")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, uuid.Nil, got)
}

func TestRequireViewer(t *testing.T) {
	r := newTestRouter()
	r.POST("/private", RequireViewer(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/private", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/private", nil)
	req.Header.Set(ViewerHeader, uuid.NewString())
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   appErrors.Code
	}{
		{"not found", appErrors.ErrUnknownClub, http.StatusNotFound, appErrors.CodeNotFound},
		{"forbidden", appErrors.ErrForbidden, http.StatusForbidden, appErrors.CodePermissionDenied},
		{"invalid", appErrors.ErrInvalidFilterName, http.StatusBadRequest, appErrors.CodeInvalidArgument},
		{"plain error", assert.AnError, http.StatusInternalServerError, appErrors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body struct {
				Error struct {
					Code    appErrors.Code `json:"code"`
					Message string         `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}
