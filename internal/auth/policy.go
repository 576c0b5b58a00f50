package auth

import (
	"github.com/karolisstonys/PROJECT-CA23/internal/models"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"
)

// Identity is the authenticated caller for the duration of one request,
// resolved from token claims by the middleware.
type Identity struct {
	UserID int
	Role   models.UserRole
}

func (i Identity) IsAdmin() bool {
	return i.Role == models.UserRoleAdmin
}

// Authorize is the single ownership-or-admin decision applied before any
// per-user resource access. Allow iff the caller's role is in the allowed set
// and the caller is an admin or owns the resource. A denial is always
// FORBIDDEN, never NOT_FOUND; resource existence is the handler's concern.
func Authorize(caller Identity, ownerID int, allowed ...models.UserRole) error {
	roleAllowed := false
	for _, role := range allowed {
		if caller.Role == role {
			roleAllowed = true
			break
		}
	}
	if !roleAllowed {
		return apperrors.NewForbiddenError("You are not authorized to access requested data")
	}

	if caller.Role != models.UserRoleAdmin && caller.UserID != ownerID {
		return apperrors.NewForbiddenError("You are not authorized to access requested data")
	}

	return nil
}

// AuthorizeAdmin gates catalog-wide operations where no single owner exists.
func AuthorizeAdmin(caller Identity) error {
	if caller.Role != models.UserRoleAdmin {
		return apperrors.ErrInsufficientPermissions
	}
	return nil
}
