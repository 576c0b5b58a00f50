package services

import (
	"context"

	"github.com/karolisstonys/PROJECT-CA23/internal/auth"
	"github.com/karolisstonys/PROJECT-CA23/internal/logger"
	"github.com/karolisstonys/PROJECT-CA23/internal/models"
	"github.com/karolisstonys/PROJECT-CA23/internal/repositories"
	"github.com/karolisstonys/PROJECT-CA23/internal/services/dto"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"
)

type UserService interface {
	GetUser(ctx context.Context, caller auth.Identity, userID int) (*dto.UserResponse, error)
	GetAllUsers(ctx context.Context, caller auth.Identity) ([]dto.UserResponse, error)
	DeleteUser(ctx context.Context, caller auth.Identity, userID int) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(ctx context.Context, caller auth.Identity, userID int) (*dto.UserResponse, error) {
	if err := auth.Authorize(caller, userID, models.UserRoleAdmin, models.UserRoleUser); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFoundError("user", "UserId not found")
	}
	return ToUserResponse(user), nil
}

func (s *userService) GetAllUsers(ctx context.Context, caller auth.Identity) ([]dto.UserResponse, error) {
	if err := auth.AuthorizeAdmin(caller); err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetAll(ctx, repositories.All())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *ToUserResponse(&users[i]))
	}
	return responses, nil
}

// DeleteUser removes the user and all owned rows (address, tracked media,
// reviews, notifications). Catalog media and genres are never touched.
func (s *userService) DeleteUser(ctx context.Context, caller auth.Identity, userID int) error {
	if err := auth.AuthorizeAdmin(caller); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if user == nil {
		return apperrors.NewNotFoundError("user", "UserId not found")
	}

	if err := s.userRepo.RemoveCascade(ctx, user); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user deleted", "user_id", userID)
	return nil
}
