package middleware

import (
	"strings"

	"github.com/karolisstonys/PROJECT-CA23/internal/auth"
	"github.com/karolisstonys/PROJECT-CA23/internal/logger"
	"github.com/karolisstonys/PROJECT-CA23/internal/models"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const IdentityKey = "identity"

// AuthMiddleware validates the bearer token and stores the caller identity
// on the gin context. An absent or invalid token is UNAUTHORIZED; FORBIDDEN
// is reserved for the access policy downstream.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing"))
			c.Abort()
			return
		}

		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header must be a bearer token"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenStr, secret)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		if claims.UserID <= 0 || !models.ValidRole(claims.Role) {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		identity := auth.Identity{UserID: claims.UserID, Role: claims.Role}
		c.Set(IdentityKey, identity)

		ctx := logger.WithUserID(c.Request.Context(), identity.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetIdentity reads the caller identity placed by AuthMiddleware.
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}
