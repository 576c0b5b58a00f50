package auth

import (
	"net/http"
	"testing"

	"github.com/karolisstonys/PROJECT-CA23/internal/models"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize_OwnerAllowed(t *testing.T) {
	caller := Identity{UserID: 7, Role: models.UserRoleUser}

	err := Authorize(caller, 7, models.UserRoleAdmin, models.UserRoleUser)

	assert.NoError(t, err)
}

func TestAuthorize_AdminBypassesOwnership(t *testing.T) {
	caller := Identity{UserID: 1, Role: models.UserRoleAdmin}

	err := Authorize(caller, 999, models.UserRoleAdmin, models.UserRoleUser)

	assert.NoError(t, err)
}

func TestAuthorize_ForeignUserForbidden(t *testing.T) {
	caller := Identity{UserID: 7, Role: models.UserRoleUser}

	err := Authorize(caller, 8, models.UserRoleAdmin, models.UserRoleUser)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestAuthorize_RoleOutsideAllowedSetForbidden(t *testing.T) {
	// Even the owner is denied when the role set does not include them.
	caller := Identity{UserID: 7, Role: models.UserRoleUser}

	err := Authorize(caller, 7, models.UserRoleAdmin)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}

func TestAuthorize_DenialIsNeverNotFound(t *testing.T) {
	caller := Identity{UserID: 7, Role: models.UserRoleUser}

	err := Authorize(caller, 8, models.UserRoleUser)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.NotEqual(t, http.StatusNotFound, appErr.HTTPCode)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}

func TestAuthorizeAdmin(t *testing.T) {
	assert.NoError(t, AuthorizeAdmin(Identity{UserID: 1, Role: models.UserRoleAdmin}))

	err := AuthorizeAdmin(Identity{UserID: 2, Role: models.UserRoleUser})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, Identity{Role: models.UserRoleAdmin}.IsAdmin())
	assert.False(t, Identity{Role: models.UserRoleUser}.IsAdmin())
}
