package services

import (
	"github.com/karolisstonys/PROJECT-CA23/internal/config"
	"github.com/karolisstonys/PROJECT-CA23/internal/omdb"
	"github.com/karolisstonys/PROJECT-CA23/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer bundles all business services for dependency injection
// into the handlers.
type ServiceContainer struct {
	Auth         AuthService
	User         UserService
	Address      AddressService
	Media        MediaService
	UserMedia    UserMediaService
	Review       ReviewService
	Notification NotificationService
}

// NewServiceContainer wires repositories and services from a live database
// handle.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, omdbClient omdb.Client) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	addressRepo := repositories.NewAddressRepository(db)
	mediaRepo := repositories.NewMediaRepository(db)
	genreRepo := repositories.NewGenreRepository(db)
	userMediaRepo := repositories.NewUserMediaRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	lifecycle := NewReviewLifecycle(reviewRepo)

	return &ServiceContainer{
		Auth:         NewAuthService(userRepo, cfg),
		User:         NewUserService(userRepo),
		Address:      NewAddressService(addressRepo, userRepo),
		Media:        NewMediaService(mediaRepo, genreRepo, omdbClient),
		UserMedia:    NewUserMediaService(userMediaRepo, mediaRepo, reviewRepo, lifecycle),
		Review:       NewReviewService(reviewRepo),
		Notification: NewNotificationService(notificationRepo, userRepo),
	}
}
