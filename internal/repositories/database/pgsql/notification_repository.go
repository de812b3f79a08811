package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seedswap/seed_exchange_app/internal/apperrors"
	"github.com/seedswap/seed_exchange_app/internal/core/domain"
	portsrepo "github.com/seedswap/seed_exchange_app/internal/core/ports/repositories"
	"github.com/seedswap/seed_exchange_app/internal/models"
)

const notificationColumns = `notification_id, user_id, type, related_exchange_id, data, is_read, created_at`

type PgxNotificationRepository struct {
	BaseRepository
}

// newPgxNotificationRepository creates a new repository for notification data.
func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepository {
	return &PgxNotificationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.NotificationRepository = (*PgxNotificationRepository)(nil)

// SaveNotification inserts a new notification row. The data map is stored as JSONB.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	model := toModelNotification(notification)

	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.NotificationID,
		model.UserID,
		model.Type,
		model.RelatedExchangeID,
		model.Data,
		model.IsRead,
		model.CreatedAt,
	)
	if err != nil {
		return wrapQueryErr(fmt.Sprintf("failed to save notification %s", model.NotificationID), err)
	}
	return nil
}

// ListNotificationsByUser retrieves a user's notifications, newest first.
func (r *PgxNotificationRepository) ListNotificationsByUser(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1`
	if unreadOnly {
		query += ` AND NOT is_read`
	}
	query += ` ORDER BY created_at DESC LIMIT $2;`

	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, wrapQueryErr(fmt.Sprintf("failed to query notifications for user %s", userID), err)
	}

	modelNotifications, err := pgx.CollectRows(rows, scanNotification)
	if err != nil {
		return nil, wrapQueryErr(fmt.Sprintf("failed to scan notifications for user %s", userID), err)
	}

	notifications := make([]domain.Notification, len(modelNotifications))
	for i, m := range modelNotifications {
		notifications[i] = toDomainNotification(m)
	}
	return notifications, nil
}

// CountUnreadByUser counts a user's unread notifications.
func (r *PgxNotificationRepository) CountUnreadByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT is_read;`, userID).Scan(&count)
	if err != nil {
		return 0, wrapQueryErr(fmt.Sprintf("failed to count unread notifications for user %s", userID), err)
	}
	return count, nil
}

// MarkNotificationRead marks a single notification as read, scoped to the owner.
func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID, userID string) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE notification_id = $1 AND user_id = $2;`,
		notificationID, userID)
	if err != nil {
		return wrapQueryErr(fmt.Sprintf("failed to mark notification %s read", notificationID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkAllNotificationsRead marks all of a user's notifications as read.
func (r *PgxNotificationRepository) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	_, err := r.Pool.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read;`, userID)
	if err != nil {
		return wrapQueryErr(fmt.Sprintf("failed to mark notifications read for user %s", userID), err)
	}
	return nil
}

// DeleteNotification removes a single notification, scoped to the owner.
func (r *PgxNotificationRepository) DeleteNotification(ctx context.Context, notificationID, userID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM notifications WHERE notification_id = $1 AND user_id = $2;`,
		notificationID, userID)
	if err != nil {
		return wrapQueryErr(fmt.Sprintf("failed to delete notification %s", notificationID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanNotification(row pgx.CollectableRow) (models.Notification, error) {
	var n models.Notification
	err := row.Scan(
		&n.NotificationID,
		&n.UserID,
		&n.Type,
		&n.RelatedExchangeID,
		&n.Data,
		&n.IsRead,
		&n.CreatedAt,
	)
	return n, err
}

func toModelNotification(n domain.Notification) models.Notification {
	return models.Notification{
		NotificationID:    n.NotificationID,
		UserID:            n.UserID,
		Type:              string(n.Type),
		RelatedExchangeID: optionalString(n.RelatedExchangeID),
		Data:              n.Data,
		IsRead:            n.IsRead,
		CreatedAt:         n.CreatedAt,
	}
}

func toDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID:    m.NotificationID,
		UserID:            m.UserID,
		Type:              domain.NotificationType(m.Type),
		RelatedExchangeID: stringValue(m.RelatedExchangeID),
		Data:              m.Data,
		IsRead:            m.IsRead,
		CreatedAt:         m.CreatedAt,
	}
}
