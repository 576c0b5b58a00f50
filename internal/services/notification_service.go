package services

import (
	"context"

	"github.com/karolisstonys/PROJECT-CA23/internal/auth"
	"github.com/karolisstonys/PROJECT-CA23/internal/models"
	"github.com/karolisstonys/PROJECT-CA23/internal/repositories"
	"github.com/karolisstonys/PROJECT-CA23/internal/services/dto"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"
)

// NotificationService stores and reads notification rows. Delivery is out of
// scope; Shown is the only state transition.
type NotificationService interface {
	GetUserNotifications(ctx context.Context, caller auth.Identity, userID int) ([]models.Notification, error)
	CreateNotification(ctx context.Context, caller auth.Identity, req *dto.CreateNotificationRequest) (*models.Notification, error)
	MarkShown(ctx context.Context, caller auth.Identity, notificationID int) (*models.Notification, error)
	DeleteNotification(ctx context.Context, caller auth.Identity, notificationID int) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, userRepo repositories.UserRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo, userRepo: userRepo}
}

func (s *notificationService) GetUserNotifications(ctx context.Context, caller auth.Identity, userID int) ([]models.Notification, error) {
	if err := auth.Authorize(caller, userID, models.UserRoleAdmin, models.UserRoleUser); err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notifications, nil
}

func (s *notificationService) CreateNotification(ctx context.Context, caller auth.Identity, req *dto.CreateNotificationRequest) (*models.Notification, error) {
	if err := auth.AuthorizeAdmin(caller); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFoundError("user", "UserId not found")
	}

	notification := &models.Notification{
		UserID: req.UserID,
		Title:  req.Title,
		Text:   req.Text,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notification, nil
}

func (s *notificationService) MarkShown(ctx context.Context, caller auth.Identity, notificationID int) (*models.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if notification == nil {
		return nil, apperrors.NewNotFoundError("notification", "NotificationId not found")
	}

	if err := auth.Authorize(caller, notification.UserID, models.UserRoleAdmin, models.UserRoleUser); err != nil {
		return nil, err
	}

	notification.Shown = true
	if err := s.notificationRepo.Update(ctx, notification); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notification, nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, caller auth.Identity, notificationID int) error {
	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if notification == nil {
		return apperrors.NewNotFoundError("notification", "NotificationId not found")
	}

	if err := auth.Authorize(caller, notification.UserID, models.UserRoleAdmin, models.UserRoleUser); err != nil {
		return err
	}

	if err := s.notificationRepo.Remove(ctx, notification); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
