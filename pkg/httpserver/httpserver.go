// Package httpserver holds the gin plumbing shared by every delivery
// package: the router, viewer identity and error responses.
package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appErrors "github.com/robertwachen/fritterfrontend/pkg/errors"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

// ViewerHeader carries the id of the signed-in user. Sessions are handled
// upstream of this service.
const ViewerHeader = "X-User-ID"

const viewerKey = "viewer"

// NewRouter returns an engine with recovery, request logging, /health and
// /metrics served from gatherer.
func NewRouter(log logger.Logger, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log), identify())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return r
}

func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// identify resolves the viewer once per request. A missing or malformed
// header is an anonymous viewer.
func identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, err := uuid.Parse(c.GetHeader(ViewerHeader))
		if err != nil {
			viewer = uuid.Nil
		}
		c.Set(viewerKey, viewer)
		c.Next()
	}
}

// Viewer is the requesting user, uuid.Nil when anonymous.
func Viewer(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(viewerKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	id, err := uuid.Parse(c.GetHeader(ViewerHeader))
	if err != nil {
		return uuid.Nil
	}
	return id
}

// RequireViewer rejects anonymous requests.
func RequireViewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Viewer(c) == uuid.Nil {
			Error(c, appErrors.Unauthorized("you must be logged in"))
			return
		}
		c.Next()
	}
}

type errorResponse struct {
	Error *appErrors.AppError `json:"error"`
}

// Error aborts the request with err's status code and a
// {"error": {"code", "message"}} body.
func Error(c *gin.Context, err error) {
	var appErr *appErrors.AppError
	if !errors.As(err, &appErr) {
		appErr = &appErrors.AppError{Code: appErrors.CodeInternal, Message: "internal server error"}
	}
	c.AbortWithStatusJSON(appErr.Code.HTTPStatus(), errorResponse{Error: appErr})
}

// BadRequest reports a body that failed to bind.
func BadRequest(c *gin.Context, err error) {
	Error(c, appErrors.Wrap(appErrors.CodeInvalidArgument, "malformed request body", err))
}
