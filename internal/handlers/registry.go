package handlers

import (
	"github.com/karolisstonys/PROJECT-CA23/internal/services"
	"github.com/karolisstonys/PROJECT-CA23/internal/validator"
)

// AppHandlers bundles all HTTP handlers for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Address      *AddressHandler
	Media        *MediaHandler
	UserMedia    *UserMediaHandler
	Review       *ReviewHandler
	Notification *NotificationHandler
}

func NewAppHandlers(svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Auth:         NewAuthHandler(base, svc.Auth),
		User:         NewUserHandler(base, svc.User),
		Address:      NewAddressHandler(base, svc.Address),
		Media:        NewMediaHandler(base, svc.Media),
		UserMedia:    NewUserMediaHandler(base, svc.UserMedia),
		Review:       NewReviewHandler(base, svc.Review),
		Notification: NewNotificationHandler(base, svc.Notification),
	}
}
