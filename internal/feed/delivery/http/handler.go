package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robertwachen/fritterfrontend/internal/feed"
	"github.com/robertwachen/fritterfrontend/pkg/httpserver"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

type FeedHandler struct {
	uc     feed.FeedUsecase
	logger logger.Logger
}

func NewFeedHandler(uc feed.FeedUsecase, logger logger.Logger) *FeedHandler {
	return &FeedHandler{uc: uc, logger: logger}
}

func (h *FeedHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/freets", h.GetFreets)
}

// GetFreets serves the viewer's feed narrowed by the author and clubName
// query parameters.
func (h *FeedHandler) GetFreets(c *gin.Context) {
	viewer := httpserver.Viewer(c)

	posts, err := h.uc.ResolveQuery(c.Request.Context(), viewer, c.Request.URL.RawQuery)
	if err != nil {
		h.logger.Debug("feed resolution failed", "query", c.Request.URL.RawQuery, "err", err)
		httpserver.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, feed.ToFreetResponses(posts))
}
