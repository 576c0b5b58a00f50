package services

import (
	"net/http"
	"testing"

	"github.com/karolisstonys/PROJECT-CA23/internal/auth"
	"github.com/karolisstonys/PROJECT-CA23/internal/models"
	"github.com/karolisstonys/PROJECT-CA23/internal/repositories"
	"github.com/karolisstonys/PROJECT-CA23/internal/services/dto"
	"github.com/karolisstonys/PROJECT-CA23/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) AuthService {
	return NewAuthService(repositories.NewUserRepository(db), helpers.NewTestConfig())
}

func TestRegister_CreatesRegularUser(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newAuthService(db)

	resp, err := svc.Register(helpers.Ctx(), &dto.RegisterRequest{
		Username:  "newuser",
		FirstName: "New",
		LastName:  "User",
		Password:  "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "newuser", resp.Username)
	assert.Equal(t, string(models.UserRoleUser), resp.Role)

	var stored models.User
	require.NoError(t, db.Where("username = ?", "newuser").First(&stored).Error)
	assert.NotEqual(t, "password123", stored.PasswordHash)
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newAuthService(db)
	helpers.CreateUser(t, db, "taken", models.UserRoleUser)

	_, err := svc.Register(helpers.Ctx(), &dto.RegisterRequest{
		Username:  "taken",
		FirstName: "Some",
		LastName:  "Body",
		Password:  "password123",
	})

	assert.Equal(t, http.StatusConflict, httpCode(t, err))
}

func TestLogin_IssuesParseableToken(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newAuthService(db)
	user := helpers.CreateUser(t, db, "login-user", models.UserRoleUser)

	resp, err := svc.Login(helpers.Ctx(), &dto.LoginRequest{Username: "login-user", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	claims, err := auth.ParseToken(resp.AccessToken, helpers.NewTestConfig().JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, claims.UserID)
	assert.Equal(t, models.UserRoleUser, claims.Role)
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newAuthService(db)
	helpers.CreateUser(t, db, "login-user", models.UserRoleUser)

	_, err := svc.Login(helpers.Ctx(), &dto.LoginRequest{Username: "login-user", Password: "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, httpCode(t, err))
}

func TestLogin_UnknownUserUnauthorized(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Login(helpers.Ctx(), &dto.LoginRequest{Username: "ghost", Password: "password123"})
	assert.Equal(t, http.StatusUnauthorized, httpCode(t, err))
}

func TestLogin_UpdatesLastLogin(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newAuthService(db)
	user := helpers.CreateUser(t, db, "login-user", models.UserRoleUser)

	_, err := svc.Login(helpers.Ctx(), &dto.LoginRequest{Username: "login-user", Password: "password123"})
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, user.UserID).Error)
	assert.False(t, stored.LastLogin.IsZero())
}
