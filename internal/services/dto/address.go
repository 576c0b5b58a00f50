package dto

type AddAddressRequest struct {
	UserID      int    `json:"userId" validate:"required,gt=0"`
	Country     string `json:"country" validate:"required,max=100"`
	City        string `json:"city" validate:"required,max=100"`
	AddressText string `json:"addressText" validate:"required,max=500"`
	PostCode    string `json:"postCode" validate:"required,max=20"`
}

type UpdateAddressRequest struct {
	AddressID   int    `json:"addressId" validate:"required,gt=0"`
	Country     string `json:"country" validate:"required,max=100"`
	City        string `json:"city" validate:"required,max=100"`
	AddressText string `json:"addressText" validate:"required,max=500"`
	PostCode    string `json:"postCode" validate:"required,max=20"`
}

type AddressResponse struct {
	AddressID   int    `json:"addressId"`
	UserID      int    `json:"userId"`
	Username    string `json:"username,omitempty"`
	Country     string `json:"country"`
	City        string `json:"city"`
	AddressText string `json:"addressText"`
	PostCode    string `json:"postCode"`
}
