package handlers

import (
	"net/http"

	"github.com/karolisstonys/PROJECT-CA23/internal/services"
	"github.com/karolisstonys/PROJECT-CA23/internal/services/dto"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	BaseHandler
	addressService services.AddressService
}

func NewAddressHandler(base BaseHandler, addressService services.AddressService) *AddressHandler {
	return &AddressHandler{BaseHandler: base, addressService: addressService}
}

func (h *AddressHandler) RegisterRoutes(r *gin.RouterGroup) {
	addresses := r.Group("/addresses")
	{
		addresses.GET("", h.GetAllAddresses)
		addresses.GET("/:userId", h.GetAddress)
		addresses.POST("", h.AddAddress)
		addresses.PUT("", h.UpdateAddress)
		addresses.DELETE("/:userId", h.DeleteAddress)
	}
}

// GetAddress answers 400 for a bad id, 403 for a foreign user, 404 for a
// missing address, in that order.
func (h *AddressHandler) GetAddress(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}
	userID, ok := h.ParamInt(c, "userId")
	if !ok {
		return
	}

	address, err := h.addressService.GetAddress(c.Request.Context(), identity, userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, address)
}

func (h *AddressHandler) GetAllAddresses(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	addresses, err := h.addressService.GetAllAddresses(c.Request.Context(), identity)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (h *AddressHandler) AddAddress(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	var req dto.AddAddressRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	address, err := h.addressService.AddAddress(c.Request.Context(), identity, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, address)
}

func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	var req dto.UpdateAddressRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.addressService.UpdateAddress(c.Request.Context(), identity, &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}
	userID, ok := h.ParamInt(c, "userId")
	if !ok {
		return
	}

	if err := h.addressService.DeleteAddress(c.Request.Context(), identity, userID); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
