package repositories

import (
	"context"

	"github.com/karolisstonys/PROJECT-CA23/internal/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	Repository[models.Genre]
	FindByName(ctx context.Context, name string) (*models.Genre, error)
	// FindOrCreate resolves a genre by its unique name, creating it when new.
	FindOrCreate(ctx context.Context, name string) (*models.Genre, error)
}

type genreRepository struct {
	*GormRepository[models.Genre]
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{
		GormRepository: NewRepository[models.Genre](db),
	}
}

func (r *genreRepository) FindByName(ctx context.Context, name string) (*models.Genre, error) {
	return r.Get(ctx, Where("name = ?", name))
}

func (r *genreRepository) FindOrCreate(ctx context.Context, name string) (*models.Genre, error) {
	genre, err := r.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if genre != nil {
		return genre, nil
	}

	genre = &models.Genre{Name: name}
	if err := r.Create(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}
