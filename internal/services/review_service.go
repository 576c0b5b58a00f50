package services

import (
	"context"

	"github.com/karolisstonys/PROJECT-CA23/internal/auth"
	"github.com/karolisstonys/PROJECT-CA23/internal/models"
	"github.com/karolisstonys/PROJECT-CA23/internal/repositories"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"
)

// ReviewService is a read-only surface. Reviews are written exclusively
// through the usermedia update flow and removed only by cascade.
type ReviewService interface {
	GetUserReviews(ctx context.Context, caller auth.Identity, userID int) ([]models.Review, error)
	GetAllReviews(ctx context.Context, caller auth.Identity) ([]models.Review, error)
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) GetUserReviews(ctx context.Context, caller auth.Identity, userID int) ([]models.Review, error) {
	if err := auth.Authorize(caller, userID, models.UserRoleAdmin, models.UserRoleUser); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reviews, nil
}

func (s *reviewService) GetAllReviews(ctx context.Context, caller auth.Identity) ([]models.Review, error) {
	if err := auth.AuthorizeAdmin(caller); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.GetAll(ctx, repositories.All())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reviews, nil
}
