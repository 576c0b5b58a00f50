package handlers

import (
	"net/http"

	"github.com/karolisstonys/PROJECT-CA23/internal/services"
	"github.com/karolisstonys/PROJECT-CA23/internal/services/dto"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserMediaHandler struct {
	BaseHandler
	userMediaService services.UserMediaService
}

func NewUserMediaHandler(base BaseHandler, userMediaService services.UserMediaService) *UserMediaHandler {
	return &UserMediaHandler{BaseHandler: base, userMediaService: userMediaService}
}

func (h *UserMediaHandler) RegisterRoutes(r *gin.RouterGroup) {
	userMedias := r.Group("/usermedias")
	{
		userMedias.GET("/:userId", h.GetUserMedias)
		userMedias.POST("", h.AddUserMedia)
		userMedias.PUT("", h.UpdateUserMedia)
		userMedias.DELETE("/:id", h.DeleteUserMedia)
	}
}

func (h *UserMediaHandler) GetUserMedias(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}
	userID, ok := h.ParamInt(c, "userId")
	if !ok {
		return
	}

	userMedias, err := h.userMediaService.GetUserMedias(c.Request.Context(), identity, userID, c.Query("filter"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, userMedias)
}

func (h *UserMediaHandler) AddUserMedia(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	var req dto.AddUserMediaRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	userMedia, err := h.userMediaService.AddUserMedia(c.Request.Context(), identity, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, userMedia)
}

func (h *UserMediaHandler) UpdateUserMedia(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	var req dto.UpdateUserMediaRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	userMedia, err := h.userMediaService.UpdateUserMedia(c.Request.Context(), identity, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, userMedia)
}

func (h *UserMediaHandler) DeleteUserMedia(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}
	userMediaID, ok := h.ParamInt(c, "id")
	if !ok {
		return
	}

	if err := h.userMediaService.DeleteUserMedia(c.Request.Context(), identity, userMediaID); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
