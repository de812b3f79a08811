package repositories

import (
	"context"

	"github.com/seedswap/seed_exchange_app/internal/core/domain"
)

// NotificationReader defines read operations for notification data.
type NotificationReader interface {
	// ListNotificationsByUser retrieves a user's notifications, newest first.
	ListNotificationsByUser(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error)

	// CountUnreadByUser counts a user's unread notifications.
	CountUnreadByUser(ctx context.Context, userID string) (int, error)
}

// NotificationWriter defines write operations for notification data.
type NotificationWriter interface {
	// SaveNotification persists a new notification.
	SaveNotification(ctx context.Context, notification domain.Notification) error

	// MarkNotificationRead marks a single notification as read. The userID
	// scopes the update so users cannot touch each other's notifications.
	MarkNotificationRead(ctx context.Context, notificationID, userID string) error

	// MarkAllNotificationsRead marks all of a user's notifications as read.
	MarkAllNotificationsRead(ctx context.Context, userID string) error

	// DeleteNotification removes a single notification.
	DeleteNotification(ctx context.Context, notificationID, userID string) error
}

// NotificationRepository combines all notification repository interfaces.
type NotificationRepository interface {
	NotificationReader
	NotificationWriter
}
