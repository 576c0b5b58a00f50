package services

import (
	"net/http"
	"testing"

	"github.com/karolisstonys/PROJECT-CA23/internal/models"
	"github.com/karolisstonys/PROJECT-CA23/internal/repositories"
	"github.com/karolisstonys/PROJECT-CA23/internal/services/dto"
	"github.com/karolisstonys/PROJECT-CA23/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNotificationService(db *gorm.DB) NotificationService {
	return NewNotificationService(repositories.NewNotificationRepository(db), repositories.NewUserRepository(db))
}

func TestCreateNotification_AdminForExistingUser(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newNotificationService(db)
	admin := helpers.CreateUser(t, db, "boss", models.UserRoleAdmin)
	user := helpers.CreateUser(t, db, "target", models.UserRoleUser)

	notification, err := svc.CreateNotification(helpers.Ctx(), helpers.Identity(admin), &dto.CreateNotificationRequest{
		UserID: user.UserID,
		Title:  "Welcome",
		Text:   "Your account is ready.",
	})

	require.NoError(t, err)
	assert.False(t, notification.Shown)
	assert.Equal(t, user.UserID, notification.UserID)
}

func TestCreateNotification_UnknownUserNotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newNotificationService(db)
	admin := helpers.CreateUser(t, db, "boss", models.UserRoleAdmin)

	_, err := svc.CreateNotification(helpers.Ctx(), helpers.Identity(admin), &dto.CreateNotificationRequest{
		UserID: 999, Title: "Hi", Text: "there",
	})
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestCreateNotification_RequiresAdmin(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newNotificationService(db)
	user := helpers.CreateUser(t, db, "pleb", models.UserRoleUser)

	_, err := svc.CreateNotification(helpers.Ctx(), helpers.Identity(user), &dto.CreateNotificationRequest{
		UserID: user.UserID, Title: "Hi", Text: "there",
	})
	assert.Equal(t, http.StatusForbidden, httpCode(t, err))
}

func TestMarkShown_OwnerFlipsFlag(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newNotificationService(db)
	user := helpers.CreateUser(t, db, "reader", models.UserRoleUser)
	notification := &models.Notification{UserID: user.UserID, Title: "Hi", Text: "there"}
	require.NoError(t, db.Create(notification).Error)

	updated, err := svc.MarkShown(helpers.Ctx(), helpers.Identity(user), notification.NotificationID)
	require.NoError(t, err)
	assert.True(t, updated.Shown)
}

func TestMarkShown_ForeignUserForbidden(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newNotificationService(db)
	owner := helpers.CreateUser(t, db, "owner", models.UserRoleUser)
	other := helpers.CreateUser(t, db, "other", models.UserRoleUser)
	notification := &models.Notification{UserID: owner.UserID, Title: "Hi", Text: "there"}
	require.NoError(t, db.Create(notification).Error)

	_, err := svc.MarkShown(helpers.Ctx(), helpers.Identity(other), notification.NotificationID)
	assert.Equal(t, http.StatusForbidden, httpCode(t, err))
}

func TestDeleteNotification_OwnerAndAdmin(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newNotificationService(db)
	owner := helpers.CreateUser(t, db, "owner", models.UserRoleUser)
	notification := &models.Notification{UserID: owner.UserID, Title: "Hi", Text: "there"}
	require.NoError(t, db.Create(notification).Error)

	require.NoError(t, svc.DeleteNotification(helpers.Ctx(), helpers.Identity(owner), notification.NotificationID))

	err := svc.DeleteNotification(helpers.Ctx(), helpers.Identity(owner), notification.NotificationID)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestGetUserNotifications_Ownership(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newNotificationService(db)
	owner := helpers.CreateUser(t, db, "owner", models.UserRoleUser)
	other := helpers.CreateUser(t, db, "other", models.UserRoleUser)
	require.NoError(t, db.Create(&models.Notification{UserID: owner.UserID, Title: "Hi", Text: "there"}).Error)

	list, err := svc.GetUserNotifications(helpers.Ctx(), helpers.Identity(owner), owner.UserID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.GetUserNotifications(helpers.Ctx(), helpers.Identity(other), owner.UserID)
	assert.Equal(t, http.StatusForbidden, httpCode(t, err))
}
