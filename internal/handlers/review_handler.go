package handlers

import (
	"net/http"

	"github.com/karolisstonys/PROJECT-CA23/internal/services"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes the read-only review surface; writes go through the
// usermedia update flow.
type ReviewHandler struct {
	BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{BaseHandler: base, reviewService: reviewService}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	reviews := r.Group("/reviews")
	{
		reviews.GET("", h.GetAllReviews)
		reviews.GET("/:userId", h.GetUserReviews)
	}
}

func (h *ReviewHandler) GetUserReviews(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}
	userID, ok := h.ParamInt(c, "userId")
	if !ok {
		return
	}

	reviews, err := h.reviewService.GetUserReviews(c.Request.Context(), identity, userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) GetAllReviews(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	reviews, err := h.reviewService.GetAllReviews(c.Request.Context(), identity)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
