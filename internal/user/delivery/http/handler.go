package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robertwachen/fritterfrontend/internal/user"
	"github.com/robertwachen/fritterfrontend/pkg/httpserver"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

type UserHandler struct {
	uc     user.UserUsecase
	logger logger.Logger
}

func NewUserHandler(uc user.UserUsecase, logger logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

func (h *UserHandler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/users")
	g.POST("", h.Register)
	g.GET("/me", httpserver.RequireViewer(), h.Me)
	g.GET("/:username", h.Get)
	g.PATCH("", httpserver.RequireViewer(), h.UpdateDisplayName)
}

func (h *UserHandler) Register(c *gin.Context) {
	var cmd user.RegisterCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		httpserver.BadRequest(c, err)
		return
	}

	dto, err := h.uc.Register(c.Request.Context(), cmd)
	if err != nil {
		httpserver.Error(c, err)
		return
	}
	h.logger.Info("user registered", "username", dto.Username)
	c.JSON(http.StatusCreated, gin.H{"message": "Your account was created successfully.", "user": dto})
}

func (h *UserHandler) Get(c *gin.Context) {
	dto, err := h.uc.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		httpserver.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// Me returns the viewer's own profile. "me" is too short to be a username.
func (h *UserHandler) Me(c *gin.Context) {
	dto, err := h.uc.GetUserByID(c.Request.Context(), httpserver.Viewer(c))
	if err != nil {
		httpserver.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *UserHandler) UpdateDisplayName(c *gin.Context) {
	var cmd user.UpdateDisplayNameCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		httpserver.BadRequest(c, err)
		return
	}

	if err := h.uc.UpdateDisplayName(c.Request.Context(), httpserver.Viewer(c), cmd.DisplayName); err != nil {
		httpserver.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Your display name was updated successfully."})
}
