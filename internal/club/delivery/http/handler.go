package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/robertwachen/fritterfrontend/internal/club"
	appErrors "github.com/robertwachen/fritterfrontend/pkg/errors"
	"github.com/robertwachen/fritterfrontend/pkg/httpserver"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

type ClubHandler struct {
	uc     club.ClubUsecase
	logger logger.Logger
}

func NewClubHandler(uc club.ClubUsecase, logger logger.Logger) *ClubHandler {
	return &ClubHandler{uc: uc, logger: logger}
}

func (h *ClubHandler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/clubs")
	g.GET("/:clubName", h.Get)

	auth := g.Group("", httpserver.RequireViewer())
	auth.POST("", h.Create)
	auth.PATCH("/:clubName", h.Update)
	auth.DELETE("/:clubName", h.Delete)
	auth.POST("/:clubName/join", h.Join)
	auth.POST("/:clubName/members/:userId", h.Admit)
	auth.DELETE("/:clubName/members", h.Leave)
}

func (h *ClubHandler) Create(c *gin.Context) {
	var cmd club.CreateClubCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		httpserver.BadRequest(c, err)
		return
	}

	dto, err := h.uc.CreateClub(c.Request.Context(), httpserver.Viewer(c), cmd)
	if err != nil {
		httpserver.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Your club was created successfully.", "club": dto})
}

func (h *ClubHandler) Get(c *gin.Context) {
	dto, err := h.uc.GetClub(c.Request.Context(), c.Param("clubName"))
	if err != nil {
		httpserver.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *ClubHandler) Update(c *gin.Context) {
	var cmd club.UpdateClubCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		httpserver.BadRequest(c, err)
		return
	}

	dto, err := h.uc.UpdateClub(c.Request.Context(), httpserver.Viewer(c), c.Param("clubName"), cmd)
	if err != nil {
		httpserver.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Your club was updated successfully.", "club": dto})
}

func (h *ClubHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteClub(c.Request.Context(), httpserver.Viewer(c), c.Param("clubName")); err != nil {
		httpserver.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Your club was deleted successfully."})
}

func (h *ClubHandler) Join(c *gin.Context) {
	if err := h.uc.RequestToJoin(c.Request.Context(), httpserver.Viewer(c), c.Param("clubName")); err != nil {
		httpserver.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Your request to join was recorded."})
}

func (h *ClubHandler) Admit(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httpserver.Error(c, appErrors.ErrUserNotFound)
		return
	}

	if err := h.uc.AdmitMember(c.Request.Context(), httpserver.Viewer(c), c.Param("clubName"), userID); err != nil {
		httpserver.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "The member was admitted."})
}

func (h *ClubHandler) Leave(c *gin.Context) {
	if err := h.uc.Leave(c.Request.Context(), httpserver.Viewer(c), c.Param("clubName")); err != nil {
		httpserver.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "You left the club."})
}
