package repositories

import (
	"context"
	"errors"

	"github.com/karolisstonys/PROJECT-CA23/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Repository[models.User]
	FindByID(ctx context.Context, id int, include ...string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// RemoveCascade deletes the user together with its owned rows (address,
	// tracked media, reviews, notifications). Catalog rows stay untouched.
	RemoveCascade(ctx context.Context, user *models.User) error
}

type userRepository struct {
	*GormRepository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		GormRepository: NewRepository[models.User](db),
		db:             db,
	}
}

func (r *userRepository) FindByID(ctx context.Context, id int, include ...string) (*models.User, error) {
	return r.Get(ctx, Where("user_id = ?", id), include...)
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.Get(ctx, Where("username = ?", username))
}

func (r *userRepository) RemoveCascade(ctx context.Context, user *models.User) error {
	// Association-based delete keeps the cascade working on stores that do
	// not enforce foreign keys. Reviews are owned directly by the user, so
	// usermedia-linked reviews are covered as well.
	res := r.db.WithContext(ctx).Select(clause.Associations).Delete(user)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
