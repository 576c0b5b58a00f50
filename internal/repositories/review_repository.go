package repositories

import (
	"context"
	"errors"

	"github.com/karolisstonys/PROJECT-CA23/internal/models"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Repository[models.Review]
	FindByID(ctx context.Context, id int) (*models.Review, error)
	// FindByUserMedia returns the single review linked to a tracked media
	// record, or nil; at most one can exist.
	FindByUserMedia(ctx context.Context, userMediaID int) (*models.Review, error)
	FindAllByUser(ctx context.Context, userID int) ([]models.Review, error)
}

type reviewRepository struct {
	*GormRepository[models.Review]
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{
		GormRepository: NewRepository[models.Review](db),
	}
}

func (r *reviewRepository) FindByID(ctx context.Context, id int) (*models.Review, error) {
	return r.Get(ctx, Where("review_id = ?", id))
}

func (r *reviewRepository) FindByUserMedia(ctx context.Context, userMediaID int) (*models.Review, error) {
	return r.Get(ctx, Where("user_media_id = ?", userMediaID))
}

func (r *reviewRepository) FindAllByUser(ctx context.Context, userID int) ([]models.Review, error) {
	return r.GetAll(ctx, Where("user_id = ?", userID))
}
