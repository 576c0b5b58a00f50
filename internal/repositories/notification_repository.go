package repositories

import (
	"context"
	"errors"

	"github.com/karolisstonys/PROJECT-CA23/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Repository[models.Notification]
	FindByID(ctx context.Context, id int) (*models.Notification, error)
	FindAllByUser(ctx context.Context, userID int) ([]models.Notification, error)
}

type notificationRepository struct {
	*GormRepository[models.Notification]
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{
		GormRepository: NewRepository[models.Notification](db),
	}
}

func (r *notificationRepository) FindByID(ctx context.Context, id int) (*models.Notification, error) {
	return r.Get(ctx, Where("notification_id = ?", id))
}

func (r *notificationRepository) FindAllByUser(ctx context.Context, userID int) ([]models.Notification, error) {
	return r.GetAll(ctx, Where("user_id = ?", userID))
}
