package handlers

import (
	"strconv"

	"github.com/karolisstonys/PROJECT-CA23/internal/auth"
	"github.com/karolisstonys/PROJECT-CA23/internal/middleware"
	"github.com/karolisstonys/PROJECT-CA23/internal/validator"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// BaseHandler holds shared request plumbing; the per-resource handlers embed
// it.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

// BindAndValidate decodes the JSON body and runs struct validation. Both
// failure modes surface as VALIDATION_FAILED with per-field details.
func (h *BaseHandler) BindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}

	if err := h.validator.Validate(req); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// Identity resolves the authenticated caller. Absence means the auth
// middleware did not run or was bypassed: always 401, never 403.
func (h *BaseHandler) Identity(c *gin.Context) (auth.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return auth.Identity{}, false
	}
	return identity, true
}

// ParamInt parses a positive integer path parameter; anything else is a 400
// before any policy or existence check runs.
func (h *BaseHandler) ParamInt(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil || value <= 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid "+name+" parameter"))
		return 0, false
	}
	return value, true
}
