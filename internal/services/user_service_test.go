package services

import (
	"net/http"
	"testing"

	"github.com/karolisstonys/PROJECT-CA23/internal/models"
	"github.com/karolisstonys/PROJECT-CA23/internal/repositories"
	"github.com/karolisstonys/PROJECT-CA23/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) UserService {
	return NewUserService(repositories.NewUserRepository(db))
}

func TestGetUser_SelfAndAdmin(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newUserService(db)
	user := helpers.CreateUser(t, db, "somebody", models.UserRoleUser)
	admin := helpers.CreateUser(t, db, "boss", models.UserRoleAdmin)

	self, err := svc.GetUser(helpers.Ctx(), helpers.Identity(user), user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "somebody", self.Username)

	viaAdmin, err := svc.GetUser(helpers.Ctx(), helpers.Identity(admin), user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "somebody", viaAdmin.Username)
}

func TestGetUser_ForeignUserForbidden(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newUserService(db)
	user := helpers.CreateUser(t, db, "somebody", models.UserRoleUser)
	other := helpers.CreateUser(t, db, "other", models.UserRoleUser)

	_, err := svc.GetUser(helpers.Ctx(), helpers.Identity(other), user.UserID)
	assert.Equal(t, http.StatusForbidden, httpCode(t, err))
}

func TestGetAllUsers_AdminOnly(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newUserService(db)
	user := helpers.CreateUser(t, db, "somebody", models.UserRoleUser)
	admin := helpers.CreateUser(t, db, "boss", models.UserRoleAdmin)

	_, err := svc.GetAllUsers(helpers.Ctx(), helpers.Identity(user))
	assert.Equal(t, http.StatusForbidden, httpCode(t, err))

	users, err := svc.GetAllUsers(helpers.Ctx(), helpers.Identity(admin))
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestDeleteUser_CascadesOwnedRowsOnly(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newUserService(db)
	admin := helpers.CreateUser(t, db, "boss", models.UserRoleAdmin)
	user := helpers.CreateUser(t, db, "leaver", models.UserRoleUser)
	media := helpers.CreateMedia(t, db, "Persona")
	userMedia := helpers.CreateUserMedia(t, db, user.UserID, media.MediaID, models.MediaStatusFinished)

	review := &models.Review{
		UserID:      user.UserID,
		MediaID:     media.MediaID,
		UserMediaID: userMedia.UserMediaID,
		UserRating:  models.UserRatingGood,
	}
	require.NoError(t, db.Create(review).Error)
	require.NoError(t, db.Create(&models.Address{
		AddressID: user.UserID, UserID: user.UserID,
		Country: "LT", City: "Vilnius", AddressText: "x", PostCode: "1",
	}).Error)
	require.NoError(t, db.Create(&models.Notification{UserID: user.UserID, Title: "hi", Text: "welcome"}).Error)

	require.NoError(t, svc.DeleteUser(helpers.Ctx(), helpers.Identity(admin), user.UserID))

	counts := map[string]interface{}{
		"usermedia":    &models.UserMedia{},
		"review":       &models.Review{},
		"address":      &models.Address{},
		"notification": &models.Notification{},
	}
	for name, model := range counts {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.EqualValues(t, 0, count, "expected no %s rows after cascade", name)
	}

	// Catalog data survives the user.
	var mediaCount int64
	require.NoError(t, db.Model(&models.Media{}).Count(&mediaCount).Error)
	assert.EqualValues(t, 1, mediaCount)
}

func TestDeleteUser_RequiresAdmin(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newUserService(db)
	user := helpers.CreateUser(t, db, "leaver", models.UserRoleUser)

	err := svc.DeleteUser(helpers.Ctx(), helpers.Identity(user), user.UserID)
	assert.Equal(t, http.StatusForbidden, httpCode(t, err))
}

func TestDeleteUser_MissingUserNotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newUserService(db)
	admin := helpers.CreateUser(t, db, "boss", models.UserRoleAdmin)

	err := svc.DeleteUser(helpers.Ctx(), helpers.Identity(admin), 31337)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}
