package routes

import (
	"net/http"

	"github.com/karolisstonys/PROJECT-CA23/internal/handlers"
	"github.com/karolisstonys/PROJECT-CA23/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts every handler under /api/v1. Auth routes are public;
// everything else sits behind the JWT middleware.
func SetupRoutes(r *gin.Engine, h *handlers.AppHandlers, jwtSecret string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	h.Auth.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret))
	{
		h.User.RegisterRoutes(protected)
		h.Address.RegisterRoutes(protected)
		h.Media.RegisterRoutes(protected)
		h.UserMedia.RegisterRoutes(protected)
		h.Review.RegisterRoutes(protected)
		h.Notification.RegisterRoutes(protected)
	}
}
