package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/robertwachen/fritterfrontend/internal/freet"
	appErrors "github.com/robertwachen/fritterfrontend/pkg/errors"
	"github.com/robertwachen/fritterfrontend/pkg/httpserver"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

type FreetHandler struct {
	uc     freet.FreetUsecase
	logger logger.Logger
}

func NewFreetHandler(uc freet.FreetUsecase, logger logger.Logger) *FreetHandler {
	return &FreetHandler{uc: uc, logger: logger}
}

func (h *FreetHandler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/freets", httpserver.RequireViewer())
	g.POST("", h.Create)
	g.PATCH("/:freetId", h.Edit)
	g.DELETE("/:freetId", h.Delete)
}

func (h *FreetHandler) Create(c *gin.Context) {
	var cmd freet.CreateFreetCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		httpserver.BadRequest(c, err)
		return
	}

	dto, err := h.uc.CreateFreet(c.Request.Context(), httpserver.Viewer(c), cmd)
	if err != nil {
		httpserver.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Your freet was created successfully.", "freet": dto})
}

func (h *FreetHandler) Edit(c *gin.Context) {
	id, ok := freetID(c)
	if !ok {
		return
	}
	var cmd freet.EditFreetCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		httpserver.BadRequest(c, err)
		return
	}

	dto, err := h.uc.EditFreet(c.Request.Context(), httpserver.Viewer(c), id, cmd)
	if err != nil {
		httpserver.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Your freet was updated successfully.", "freet": dto})
}

func (h *FreetHandler) Delete(c *gin.Context) {
	id, ok := freetID(c)
	if !ok {
		return
	}

	if err := h.uc.DeleteFreet(c.Request.Context(), httpserver.Viewer(c), id); err != nil {
		httpserver.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Your freet was deleted successfully."})
}

// An unparsable id cannot name an existing freet.
func freetID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("freetId"))
	if err != nil {
		httpserver.Error(c, appErrors.ErrFreetNotFound)
		return uuid.Nil, false
	}
	return id, true
}
