package repositories

import (
	"context"
	"errors"

	"github.com/karolisstonys/PROJECT-CA23/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrMediaNotFound = errors.New("media not found")

type MediaRepository interface {
	Repository[models.Media]
	FindByID(ctx context.Context, id int, include ...string) (*models.Media, error)
	FindAllByGenre(ctx context.Context, genreID int) ([]models.Media, error)
	// RemoveCascade deletes the media row together with dependent usermedia
	// and review rows and clears its genre links.
	RemoveCascade(ctx context.Context, media *models.Media) error
}

type mediaRepository struct {
	*GormRepository[models.Media]
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{
		GormRepository: NewRepository[models.Media](db),
		db:             db,
	}
}

func (r *mediaRepository) FindByID(ctx context.Context, id int, include ...string) (*models.Media, error) {
	return r.Get(ctx, Where("media_id = ?", id), include...)
}

func (r *mediaRepository) FindAllByGenre(ctx context.Context, genreID int) ([]models.Media, error) {
	var medias []models.Media
	err := r.db.WithContext(ctx).
		Preload("Genres").
		Joins("JOIN media_genres ON media_genres.media_media_id = media.media_id").
		Where("media_genres.genre_genre_id = ?", genreID).
		Find(&medias).Error
	return medias, err
}

func (r *mediaRepository) RemoveCascade(ctx context.Context, media *models.Media) error {
	res := r.db.WithContext(ctx).Select(clause.Associations).Delete(media)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
