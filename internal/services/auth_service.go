package services

import (
	"context"
	"time"

	"github.com/karolisstonys/PROJECT-CA23/internal/auth"
	"github.com/karolisstonys/PROJECT-CA23/internal/config"
	"github.com/karolisstonys/PROJECT-CA23/internal/logger"
	"github.com/karolisstonys/PROJECT-CA23/internal/models"
	"github.com/karolisstonys/PROJECT-CA23/internal/repositories"
	"github.com/karolisstonys/PROJECT-CA23/internal/services/dto"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if existing != nil {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.UserRoleUser,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "username", user.Username, "user_id", user.UserID)
	return ToUserResponse(user), nil
}

// Login never reveals which of username or password was wrong.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if user == nil || user.IsDeleted {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	user.LastLogin = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	ttl := time.Duration(s.cfg.JWT.TTL) * time.Minute
	token, err := auth.GenerateToken(user.UserID, user.Role, s.cfg.JWT.Secret, ttl)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.UserID)
	return &dto.LoginResponse{
		AccessToken: token,
		User:        ToUserResponse(user),
	}, nil
}

func ToUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		Created:   user.Created,
		LastLogin: user.LastLogin,
	}
}
