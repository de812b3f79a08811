package services

import (
	"context"

	"github.com/seedswap/seed_exchange_app/internal/core/domain"
)

// NotificationDispatcherSvc is the surface the lifecycle engine depends on.
// Dispatch is best-effort: implementations must not let a failure here
// propagate into the operation that triggered it.
type NotificationDispatcherSvc interface {
	// Dispatch persists a notification for the recipient. The data map holds
	// name projections; content templates live in the presentation layer.
	Dispatch(ctx context.Context, recipientID string, notifType domain.NotificationType, relatedExchangeID string, data map[string]string) error
}

// NotificationSvcFacade combines dispatch with the user-facing inbox operations.
type NotificationSvcFacade interface {
	NotificationDispatcherSvc

	// ListUserNotifications lists a user's notifications, newest first.
	ListUserNotifications(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error)

	// UnreadCount counts a user's unread notifications.
	UnreadCount(ctx context.Context, userID string) (int, error)

	// MarkNotificationRead marks one of the user's notifications as read.
	MarkNotificationRead(ctx context.Context, notificationID, userID string) error

	// MarkAllNotificationsRead marks all of the user's notifications as read.
	MarkAllNotificationsRead(ctx context.Context, userID string) error

	// DeleteNotification removes one of the user's notifications.
	DeleteNotification(ctx context.Context, notificationID, userID string) error
}
