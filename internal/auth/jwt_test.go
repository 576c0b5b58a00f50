package auth

import (
	"testing"
	"time"

	"github.com/karolisstonys/PROJECT-CA23/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(42, models.UserRoleAdmin, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, models.UserRoleAdmin, claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(42, models.UserRoleUser, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(42, models.UserRoleUser, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not.a.token", "secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("password124", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("longenough"))
	assert.Error(t, ValidatePassword("short"))
}
