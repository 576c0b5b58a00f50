package handlers

import (
	"net/http"

	"github.com/karolisstonys/PROJECT-CA23/internal/services"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	BaseHandler
	userService services.UserService
}

func NewUserHandler(base BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("", h.GetAllUsers)
		users.GET("/:id", h.GetUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}

func (h *UserHandler) GetUser(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}
	userID, ok := h.ParamInt(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), identity, userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	users, err := h.userService.GetAllUsers(c.Request.Context(), identity)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}
	userID, ok := h.ParamInt(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), identity, userID); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
