package services

import (
	"context"

	"github.com/karolisstonys/PROJECT-CA23/internal/auth"
	"github.com/karolisstonys/PROJECT-CA23/internal/models"
	"github.com/karolisstonys/PROJECT-CA23/internal/repositories"
	"github.com/karolisstonys/PROJECT-CA23/internal/services/dto"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"
)

type UserMediaService interface {
	GetUserMedias(ctx context.Context, caller auth.Identity, userID int, filter string) ([]models.UserMedia, error)
	AddUserMedia(ctx context.Context, caller auth.Identity, req *dto.AddUserMediaRequest) (*models.UserMedia, error)
	UpdateUserMedia(ctx context.Context, caller auth.Identity, req *dto.UpdateUserMediaRequest) (*models.UserMedia, error)
	DeleteUserMedia(ctx context.Context, caller auth.Identity, userMediaID int) error
}

type userMediaService struct {
	userMediaRepo repositories.UserMediaRepository
	mediaRepo     repositories.MediaRepository
	reviewRepo    repositories.ReviewRepository
	lifecycle     ReviewLifecycle
}

func NewUserMediaService(
	userMediaRepo repositories.UserMediaRepository,
	mediaRepo repositories.MediaRepository,
	reviewRepo repositories.ReviewRepository,
	lifecycle ReviewLifecycle,
) UserMediaService {
	return &userMediaService{
		userMediaRepo: userMediaRepo,
		mediaRepo:     mediaRepo,
		reviewRepo:    reviewRepo,
		lifecycle:     lifecycle,
	}
}

func (s *userMediaService) GetUserMedias(ctx context.Context, caller auth.Identity, userID int, filter string) ([]models.UserMedia, error) {
	if err := auth.Authorize(caller, userID, models.UserRoleAdmin, models.UserRoleUser); err != nil {
		return nil, err
	}

	if filter == "" {
		return s.userMediaRepo.FindAllByUser(ctx, userID, "Media", "Review")
	}

	status, err := models.ParseMediaStatus(filter)
	if err != nil {
		return nil, apperrors.ErrInvalidMediaStatus
	}
	return s.userMediaRepo.FindAllByUserAndStatus(ctx, userID, status, "Media", "Review")
}

func (s *userMediaService) AddUserMedia(ctx context.Context, caller auth.Identity, req *dto.AddUserMediaRequest) (*models.UserMedia, error) {
	if err := auth.Authorize(caller, req.UserID, models.UserRoleAdmin, models.UserRoleUser); err != nil {
		return nil, err
	}

	status, err := models.ParseMediaStatus(req.MediaStatus)
	if err != nil {
		return nil, apperrors.ErrInvalidMediaStatus
	}

	media, err := s.mediaRepo.FindByID(ctx, req.MediaID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if media == nil {
		return nil, apperrors.NewNotFoundError("media", "MediaId does not exist")
	}

	tracked, err := s.userMediaRepo.ExistsForPair(ctx, req.UserID, req.MediaID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if tracked {
		return nil, apperrors.ErrMediaAlreadyTracked
	}

	userMedia := &models.UserMedia{
		UserID:      req.UserID,
		MediaID:     req.MediaID,
		MediaStatus: status,
		Note:        req.Note,
	}
	if err := s.userMediaRepo.Create(ctx, userMedia); err != nil {
		return nil, apperrors.InternalError(err)
	}
	userMedia.Media = media
	return userMedia, nil
}

// UpdateUserMedia checks ownership before existence: a caller probing with a
// foreign userMediaId gets 403, not 404, unlike the address update flow.
func (s *userMediaService) UpdateUserMedia(ctx context.Context, caller auth.Identity, req *dto.UpdateUserMediaRequest) (*models.UserMedia, error) {
	if err := auth.Authorize(caller, req.UserID, models.UserRoleAdmin, models.UserRoleUser); err != nil {
		return nil, err
	}

	userMedia, err := s.userMediaRepo.FindByID(ctx, req.UserMediaID, "Review")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if userMedia == nil {
		return nil, apperrors.NewNotFoundError("usermedia", "UserMediaId not found")
	}

	// The body declares an owner; the stored row decides.
	if err := auth.Authorize(caller, userMedia.UserID, models.UserRoleAdmin, models.UserRoleUser); err != nil {
		return nil, err
	}

	if req.MediaStatus != nil {
		status, err := models.ParseMediaStatus(*req.MediaStatus)
		if err != nil {
			return nil, apperrors.ErrInvalidMediaStatus
		}
		userMedia.MediaStatus = status
	}
	if req.Note != nil {
		userMedia.Note = *req.Note
	}

	userMedia, err = s.lifecycle.ApplyReviewUpdate(ctx, userMedia, req.UserRating, req.ReviewText)
	if err != nil {
		return nil, err
	}

	if err := s.userMediaRepo.Update(ctx, userMedia); err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("usermedia", "UserMediaId not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return userMedia, nil
}

func (s *userMediaService) DeleteUserMedia(ctx context.Context, caller auth.Identity, userMediaID int) error {
	userMedia, err := s.userMediaRepo.FindByID(ctx, userMediaID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if userMedia == nil {
		return apperrors.NewNotFoundError("usermedia", "UserMediaId not found")
	}

	if err := auth.Authorize(caller, userMedia.UserID, models.UserRoleAdmin, models.UserRoleUser); err != nil {
		return err
	}

	if err := s.userMediaRepo.Remove(ctx, userMedia); err != nil {
		return apperrors.InternalError(err)
	}

	// The linked review is lifetime-bound to the tracked media record.
	if userMedia.ReviewID != nil {
		review, err := s.reviewRepo.FindByID(ctx, *userMedia.ReviewID)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if review != nil {
			if err := s.reviewRepo.Remove(ctx, review); err != nil {
				return apperrors.InternalError(err)
			}
		}
	}
	return nil
}
