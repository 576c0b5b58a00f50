package repositories

import (
	"context"
	"errors"

	"github.com/karolisstonys/PROJECT-CA23/internal/models"

	"gorm.io/gorm"
)

var ErrUserMediaNotFound = errors.New("usermedia not found")

type UserMediaRepository interface {
	Repository[models.UserMedia]
	FindByID(ctx context.Context, id int, include ...string) (*models.UserMedia, error)
	FindAllByUser(ctx context.Context, userID int, include ...string) ([]models.UserMedia, error)
	FindAllByUserAndStatus(ctx context.Context, userID int, status models.MediaStatus, include ...string) ([]models.UserMedia, error)
	ExistsForPair(ctx context.Context, userID, mediaID int) (bool, error)
}

type userMediaRepository struct {
	*GormRepository[models.UserMedia]
}

func NewUserMediaRepository(db *gorm.DB) UserMediaRepository {
	return &userMediaRepository{
		GormRepository: NewRepository[models.UserMedia](db),
	}
}

func (r *userMediaRepository) FindByID(ctx context.Context, id int, include ...string) (*models.UserMedia, error) {
	return r.Get(ctx, Where("user_media_id = ?", id), include...)
}

func (r *userMediaRepository) FindAllByUser(ctx context.Context, userID int, include ...string) ([]models.UserMedia, error) {
	return r.GetAll(ctx, Where("user_id = ?", userID), include...)
}

func (r *userMediaRepository) FindAllByUserAndStatus(ctx context.Context, userID int, status models.MediaStatus, include ...string) ([]models.UserMedia, error) {
	return r.GetAll(ctx, Where("user_id = ? AND media_status = ?", userID, status), include...)
}

func (r *userMediaRepository) ExistsForPair(ctx context.Context, userID, mediaID int) (bool, error) {
	return r.Exist(ctx, Where("user_id = ? AND media_id = ?", userID, mediaID))
}
