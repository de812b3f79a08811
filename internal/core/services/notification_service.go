package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/seedswap/seed_exchange_app/internal/apperrors"
	"github.com/seedswap/seed_exchange_app/internal/core/domain"
	portsrepo "github.com/seedswap/seed_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/seedswap/seed_exchange_app/internal/core/ports/services"
)

// notificationService implements the NotificationSvcFacade interface.
type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo portsrepo.NotificationRepository) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: repo}
}

// Ensure notificationService implements the NotificationSvcFacade interface
var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) Dispatch(ctx context.Context, recipientID string, notifType domain.NotificationType, relatedExchangeID string, data map[string]string) error {
	if recipientID == "" {
		return fmt.Errorf("recipient id is required: %w", apperrors.ErrValidation)
	}
	if !notifType.IsValid() {
		return fmt.Errorf("unknown notification type %q: %w", notifType, apperrors.ErrValidation)
	}

	notification := domain.Notification{
		NotificationID:    uuid.NewString(),
		UserID:            recipientID,
		Type:              notifType,
		RelatedExchangeID: relatedExchangeID,
		Data:              data,
		IsRead:            false,
		CreatedAt:         time.Now(),
	}

	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		s.LogError(ctx, err, "Failed to save notification",
			slog.String("recipient_id", recipientID),
			slog.String("type", string(notifType)))
		return err
	}

	s.LogDebug(ctx, "Notification dispatched",
		slog.String("notification_id", notification.NotificationID),
		slog.String("recipient_id", recipientID),
		slog.String("type", string(notifType)))
	return nil
}

func (s *notificationService) ListUserNotifications(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.ListNotificationsByUser(ctx, userID, limit, unreadOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications",
			slog.String("user_id", userID))
		return nil, err
	}
	if notifications == nil {
		return []domain.Notification{}, nil
	}
	return notifications, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := s.notificationRepo.CountUnreadByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count unread notifications",
			slog.String("user_id", userID))
		return 0, err
	}
	return count, nil
}

func (s *notificationService) MarkNotificationRead(ctx context.Context, notificationID, userID string) error {
	err := s.notificationRepo.MarkNotificationRead(ctx, notificationID, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to mark notification read",
			slog.String("notification_id", notificationID),
			slog.String("user_id", userID))
	}
	return err
}

func (s *notificationService) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	if err := s.notificationRepo.MarkAllNotificationsRead(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to mark all notifications read",
			slog.String("user_id", userID))
		return err
	}
	return nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, notificationID, userID string) error {
	err := s.notificationRepo.DeleteNotification(ctx, notificationID, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to delete notification",
			slog.String("notification_id", notificationID),
			slog.String("user_id", userID))
	}
	return err
}
