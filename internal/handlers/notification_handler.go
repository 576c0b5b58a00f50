package handlers

import (
	"net/http"

	"github.com/karolisstonys/PROJECT-CA23/internal/services"
	"github.com/karolisstonys/PROJECT-CA23/internal/services/dto"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{BaseHandler: base, notificationService: notificationService}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("/:userId", h.GetUserNotifications)
		notifications.POST("", h.CreateNotification)
		notifications.PUT("/:id/shown", h.MarkShown)
		notifications.DELETE("/:id", h.DeleteNotification)
	}
}

func (h *NotificationHandler) GetUserNotifications(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}
	userID, ok := h.ParamInt(c, "userId")
	if !ok {
		return
	}

	notifications, err := h.notificationService.GetUserNotifications(c.Request.Context(), identity, userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	var req dto.CreateNotificationRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	notification, err := h.notificationService.CreateNotification(c.Request.Context(), identity, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, notification)
}

func (h *NotificationHandler) MarkShown(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}
	notificationID, ok := h.ParamInt(c, "id")
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkShown(c.Request.Context(), identity, notificationID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}
	notificationID, ok := h.ParamInt(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.DeleteNotification(c.Request.Context(), identity, notificationID); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
