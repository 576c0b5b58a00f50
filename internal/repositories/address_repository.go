package repositories

import (
	"context"
	"errors"

	"github.com/karolisstonys/PROJECT-CA23/internal/models"

	"gorm.io/gorm"
)

var ErrAddressNotFound = errors.New("address not found")

type AddressRepository interface {
	Repository[models.Address]
	FindByUserID(ctx context.Context, userID int, include ...string) (*models.Address, error)
	FindByAddressID(ctx context.Context, addressID int) (*models.Address, error)
}

type addressRepository struct {
	*GormRepository[models.Address]
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{
		GormRepository: NewRepository[models.Address](db),
	}
}

func (r *addressRepository) FindByUserID(ctx context.Context, userID int, include ...string) (*models.Address, error) {
	return r.Get(ctx, Where("user_id = ?", userID), include...)
}

func (r *addressRepository) FindByAddressID(ctx context.Context, addressID int) (*models.Address, error) {
	return r.Get(ctx, Where("address_id = ?", addressID))
}
