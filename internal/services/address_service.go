package services

import (
	"context"

	"github.com/karolisstonys/PROJECT-CA23/internal/auth"
	"github.com/karolisstonys/PROJECT-CA23/internal/models"
	"github.com/karolisstonys/PROJECT-CA23/internal/repositories"
	"github.com/karolisstonys/PROJECT-CA23/internal/services/dto"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"
)

type AddressService interface {
	GetAddress(ctx context.Context, caller auth.Identity, userID int) (*dto.AddressResponse, error)
	GetAllAddresses(ctx context.Context, caller auth.Identity) ([]dto.AddressResponse, error)
	AddAddress(ctx context.Context, caller auth.Identity, req *dto.AddAddressRequest) (*dto.AddressResponse, error)
	UpdateAddress(ctx context.Context, caller auth.Identity, req *dto.UpdateAddressRequest) error
	DeleteAddress(ctx context.Context, caller auth.Identity, userID int) error
}

type addressService struct {
	addressRepo repositories.AddressRepository
	userRepo    repositories.UserRepository
}

func NewAddressService(addressRepo repositories.AddressRepository, userRepo repositories.UserRepository) AddressService {
	return &addressService{addressRepo: addressRepo, userRepo: userRepo}
}

// GetAddress checks ownership before existence: an unauthorized caller gets
// 403 regardless of whether the address exists.
func (s *addressService) GetAddress(ctx context.Context, caller auth.Identity, userID int) (*dto.AddressResponse, error) {
	if err := auth.Authorize(caller, userID, models.UserRoleAdmin, models.UserRoleUser); err != nil {
		return nil, err
	}

	address, err := s.addressRepo.FindByUserID(ctx, userID, "User")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if address == nil {
		return nil, apperrors.NewNotFoundError("address", "User has no address")
	}
	return toAddressResponse(address), nil
}

func (s *addressService) GetAllAddresses(ctx context.Context, caller auth.Identity) ([]dto.AddressResponse, error) {
	if err := auth.AuthorizeAdmin(caller); err != nil {
		return nil, err
	}

	addresses, err := s.addressRepo.GetAll(ctx, repositories.All(), "User")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.AddressResponse, 0, len(addresses))
	for i := range addresses {
		responses = append(responses, *toAddressResponse(&addresses[i]))
	}
	return responses, nil
}

func (s *addressService) AddAddress(ctx context.Context, caller auth.Identity, req *dto.AddAddressRequest) (*dto.AddressResponse, error) {
	if err := auth.Authorize(caller, req.UserID, models.UserRoleAdmin, models.UserRoleUser); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFoundError("user", "UserId not found")
	}

	existing, err := s.addressRepo.FindByUserID(ctx, req.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserAlreadyHasAddress
	}

	// The address row shares its key with the owner.
	address := &models.Address{
		AddressID:   req.UserID,
		UserID:      req.UserID,
		Country:     req.Country,
		City:        req.City,
		AddressText: req.AddressText,
		PostCode:    req.PostCode,
	}
	if err := s.addressRepo.Create(ctx, address); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrUserAlreadyHasAddress
		}
		return nil, apperrors.InternalError(err)
	}

	address.User = user
	return toAddressResponse(address), nil
}

// UpdateAddress checks existence before ownership: an unknown addressId is
// 404 even for a caller who could never own it.
func (s *addressService) UpdateAddress(ctx context.Context, caller auth.Identity, req *dto.UpdateAddressRequest) error {
	address, err := s.addressRepo.FindByAddressID(ctx, req.AddressID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if address == nil {
		return apperrors.NewNotFoundError("address", "AddressId not found")
	}

	if err := auth.Authorize(caller, address.UserID, models.UserRoleAdmin, models.UserRoleUser); err != nil {
		return err
	}

	address.Country = req.Country
	address.City = req.City
	address.AddressText = req.AddressText
	address.PostCode = req.PostCode

	if err := s.addressRepo.Update(ctx, address); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *addressService) DeleteAddress(ctx context.Context, caller auth.Identity, userID int) error {
	if err := auth.AuthorizeAdmin(caller); err != nil {
		return err
	}

	address, err := s.addressRepo.FindByUserID(ctx, userID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if address == nil {
		return apperrors.NewNotFoundError("address", "User has no address")
	}

	if err := s.addressRepo.Remove(ctx, address); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func toAddressResponse(address *models.Address) *dto.AddressResponse {
	resp := &dto.AddressResponse{
		AddressID:   address.AddressID,
		UserID:      address.UserID,
		Country:     address.Country,
		City:        address.City,
		AddressText: address.AddressText,
		PostCode:    address.PostCode,
	}
	if address.User != nil {
		resp.Username = address.User.Username
	}
	return resp
}
