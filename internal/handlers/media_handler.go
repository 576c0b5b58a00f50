package handlers

import (
	"net/http"

	"github.com/karolisstonys/PROJECT-CA23/internal/services"
	"github.com/karolisstonys/PROJECT-CA23/internal/services/dto"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	BaseHandler
	mediaService services.MediaService
}

func NewMediaHandler(base BaseHandler, mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{BaseHandler: base, mediaService: mediaService}
}

func (h *MediaHandler) RegisterRoutes(r *gin.RouterGroup) {
	medias := r.Group("/medias")
	{
		medias.GET("", h.GetAllMedias)
		medias.GET("/:id", h.GetMedia)
		medias.GET("/genre/:genreId", h.GetMediasByGenre)
		medias.POST("", h.AddMedia)
		medias.POST("/omdb", h.ImportMedia)
		medias.DELETE("/:id", h.DeleteMedia)
	}
	r.GET("/genres", h.GetAllGenres)
}

func (h *MediaHandler) GetMedia(c *gin.Context) {
	if _, ok := h.Identity(c); !ok {
		return
	}
	mediaID, ok := h.ParamInt(c, "id")
	if !ok {
		return
	}

	media, err := h.mediaService.GetMedia(c.Request.Context(), mediaID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *MediaHandler) GetAllMedias(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	medias, err := h.mediaService.GetAllMedias(c.Request.Context(), identity)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, medias)
}

func (h *MediaHandler) GetMediasByGenre(c *gin.Context) {
	if _, ok := h.Identity(c); !ok {
		return
	}
	genreID, ok := h.ParamInt(c, "genreId")
	if !ok {
		return
	}

	medias, err := h.mediaService.GetMediasByGenre(c.Request.Context(), genreID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, medias)
}

func (h *MediaHandler) GetAllGenres(c *gin.Context) {
	if _, ok := h.Identity(c); !ok {
		return
	}

	genres, err := h.mediaService.GetAllGenres(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, genres)
}

func (h *MediaHandler) AddMedia(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	var req dto.MediaRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	media, err := h.mediaService.AddMedia(c.Request.Context(), identity, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, media)
}

func (h *MediaHandler) ImportMedia(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	var req dto.ImportMediaRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	media, err := h.mediaService.ImportMedia(c.Request.Context(), identity, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, media)
}

func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}
	mediaID, ok := h.ParamInt(c, "id")
	if !ok {
		return
	}

	if err := h.mediaService.DeleteMedia(c.Request.Context(), identity, mediaID); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
