package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/robertwachen/fritterfrontend/internal/discourse"
	appErrors "github.com/robertwachen/fritterfrontend/pkg/errors"
	"github.com/robertwachen/fritterfrontend/pkg/httpserver"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

type DiscourseHandler struct {
	uc     discourse.DiscourseUsecase
	logger logger.Logger
}

func NewDiscourseHandler(uc discourse.DiscourseUsecase, logger logger.Logger) *DiscourseHandler {
	return &DiscourseHandler{uc: uc, logger: logger}
}

func (h *DiscourseHandler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/discourses")
	g.POST("", h.Create)
	g.GET("/:discourseId", h.Get)
	g.PUT("/:discourseId", httpserver.RequireViewer(), h.Update)
	g.DELETE("/:discourseId", httpserver.RequireViewer(), h.Delete)
}

func (h *DiscourseHandler) Create(c *gin.Context) {
	var cmd discourse.CreateDiscourseCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		httpserver.BadRequest(c, err)
		return
	}

	dto, err := h.uc.CreateDiscourse(c.Request.Context(), cmd)
	if err != nil {
		httpserver.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Your discourse was created successfully.", "discourse": dto})
}

func (h *DiscourseHandler) Get(c *gin.Context) {
	id, ok := discourseID(c)
	if !ok {
		return
	}

	dto, err := h.uc.GetDiscourse(c.Request.Context(), id)
	if err != nil {
		httpserver.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *DiscourseHandler) Update(c *gin.Context) {
	id, ok := discourseID(c)
	if !ok {
		return
	}
	var cmd discourse.UpdateDiscourseCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		httpserver.BadRequest(c, err)
		return
	}

	dto, err := h.uc.UpdateDiscourse(c.Request.Context(), httpserver.Viewer(c), id, cmd)
	if err != nil {
		httpserver.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Your discourse was updated successfully.", "discourse": dto})
}

func (h *DiscourseHandler) Delete(c *gin.Context) {
	id, ok := discourseID(c)
	if !ok {
		return
	}

	if err := h.uc.DeleteDiscourse(c.Request.Context(), httpserver.Viewer(c), id); err != nil {
		httpserver.Error(c, err)
		return
	}
	h.logger.Info("discourse deleted", "id", id)
	c.JSON(http.StatusOK, gin.H{"message": "Your discourse was deleted successfully."})
}

func discourseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("discourseId"))
	if err != nil {
		httpserver.Error(c, appErrors.ErrDiscourseNotFound)
		return uuid.Nil, false
	}
	return id, true
}
