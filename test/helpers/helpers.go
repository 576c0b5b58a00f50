package helpers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/karolisstonys/PROJECT-CA23/database"
	"github.com/karolisstonys/PROJECT-CA23/internal/auth"
	"github.com/karolisstonys/PROJECT-CA23/internal/config"
	"github.com/karolisstonys/PROJECT-CA23/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory database with the full schema
// migrated. Shared cache keeps the database alive across pooled connections.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	return db
}

// NewTestConfig builds a config suitable for in-process tests.
func NewTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	return cfg
}

// CreateUser persists a user with the given role and the password
// "password123".
func CreateUser(t *testing.T, db *gorm.DB, username string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		PasswordHash: hash,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateMedia persists a minimal catalog entry.
func CreateMedia(t *testing.T, db *gorm.DB, title string) *models.Media {
	t.Helper()

	media := &models.Media{Title: title, Type: "movie", Year: "2020"}
	require.NoError(t, db.Create(media).Error)
	return media
}

// CreateUserMedia persists a tracked media row for the user.
func CreateUserMedia(t *testing.T, db *gorm.DB, userID, mediaID int, status models.MediaStatus) *models.UserMedia {
	t.Helper()

	userMedia := &models.UserMedia{
		UserID:      userID,
		MediaID:     mediaID,
		MediaStatus: status,
	}
	require.NoError(t, db.Create(userMedia).Error)
	return userMedia
}

// TokenFor issues a valid access token for the user.
func TokenFor(t *testing.T, cfg *config.Config, user *models.User) string {
	t.Helper()

	token, err := auth.GenerateToken(user.UserID, user.Role, cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)
	require.NoError(t, err)
	return token
}

// Identity builds the policy-level identity for a stored user.
func Identity(user *models.User) auth.Identity {
	return auth.Identity{UserID: user.UserID, Role: user.Role}
}

// Ctx is shorthand for a background context in tests.
func Ctx() context.Context {
	return context.Background()
}
