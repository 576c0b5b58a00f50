package services

import (
	"context"

	"github.com/karolisstonys/PROJECT-CA23/internal/models"
	"github.com/karolisstonys/PROJECT-CA23/internal/repositories"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"
)

// ReviewLifecycle maintains the one-review-per-tracked-media invariant.
// A review row is created lazily, on the first update that carries a
// non-empty rating or text, and updated in place afterwards. There is no way
// back: reviews disappear only when their owning rows are removed.
type ReviewLifecycle interface {
	ApplyReviewUpdate(ctx context.Context, userMedia *models.UserMedia, rating, text string) (*models.UserMedia, error)
}

type reviewLifecycle struct {
	reviewRepo repositories.ReviewRepository
}

func NewReviewLifecycle(reviewRepo repositories.ReviewRepository) ReviewLifecycle {
	return &reviewLifecycle{reviewRepo: reviewRepo}
}

// ApplyReviewUpdate mutates userMedia in memory (review link) and persists
// the review row; persisting the userMedia itself is the caller's job. The
// create-then-link sequence is not transactional; concurrent updates to the
// same record can race (see the unique index on reviews.user_media_id).
func (s *reviewLifecycle) ApplyReviewUpdate(ctx context.Context, userMedia *models.UserMedia, rating, text string) (*models.UserMedia, error) {
	review := userMedia.Review
	if review == nil && userMedia.ReviewID != nil {
		existing, err := s.reviewRepo.FindByID(ctx, *userMedia.ReviewID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		review = existing
	}

	if review == nil {
		if rating == "" && text == "" {
			// Nothing submitted yet; the pair stays in the no-review state.
			return userMedia, nil
		}

		// Rating parsing is strict: the create branch never runs with an
		// absent or unknown rating value.
		parsed, err := models.ParseUserRating(rating)
		if err != nil {
			return nil, apperrors.ErrInvalidUserRating
		}

		review = &models.Review{
			UserID:      userMedia.UserID,
			MediaID:     userMedia.MediaID,
			UserMediaID: userMedia.UserMediaID,
			UserRating:  parsed,
			ReviewText:  text,
		}
		if err := s.reviewRepo.Create(ctx, review); err != nil {
			if apperrors.Is(err, repositories.ErrDuplicate) {
				return nil, apperrors.ErrConflict(err, "review", "Review already exists for this tracked media")
			}
			return nil, apperrors.InternalError(err)
		}

		userMedia.Review = review
		userMedia.ReviewID = &review.ReviewID
		return userMedia, nil
	}

	parsed, err := models.ParseUserRating(rating)
	if err != nil {
		return nil, apperrors.ErrInvalidUserRating
	}

	review.UserRating = parsed
	review.ReviewText = text
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	userMedia.Review = review
	return userMedia, nil
}
