package database

import (
	"github.com/karolisstonys/PROJECT-CA23/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all entities. Order matters for
// stores that enforce foreign keys: owners before dependents.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Genre{},
		&models.Media{},
		&models.Review{},
		&models.UserMedia{},
		&models.Notification{},
	)
}

// defaultGenres is the stock catalog inserted on first start.
var defaultGenres = []string{
	"Action", "Adventure", "Animation", "Biography", "Comedy", "Crime",
	"Documentary", "Drama", "Family", "Fantasy", "History", "Horror",
	"Music", "Mystery", "Romance", "Sci-Fi", "Sport", "Thriller", "War",
	"Western",
}

// SeedGenres inserts the default genre catalog, skipping names that exist.
func SeedGenres(db *gorm.DB) error {
	for _, name := range defaultGenres {
		var count int64
		if err := db.Model(&models.Genre{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&models.Genre{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
