package dto

import (
	"time"

	"github.com/seedswap/seed_exchange_app/internal/core/domain"
)

// NotificationResponse defines the data returned for a stored notification.
type NotificationResponse struct {
	NotificationID    string                  `json:"notificationID"`
	Type              domain.NotificationType `json:"type"`
	RelatedExchangeID string                  `json:"relatedExchangeID,omitempty"`
	Data              map[string]string       `json:"data,omitempty"`
	IsRead            bool                    `json:"isRead"`
	CreatedAt         time.Time               `json:"createdAt"`
}

// ToNotificationResponse converts a domain.Notification to its response DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID:    n.NotificationID,
		Type:              n.Type,
		RelatedExchangeID: n.RelatedExchangeID,
		Data:              n.Data,
		IsRead:            n.IsRead,
		CreatedAt:         n.CreatedAt,
	}
}

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	Limit      int  `form:"limit,default=20"`
	UnreadOnly bool `form:"unreadOnly,default=false"`
}

// ListNotificationsResponse wraps a user's notifications.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Count         int                    `json:"count"`
}

// UnreadCountResponse carries the unread notification counter.
type UnreadCountResponse struct {
	Unread int `json:"unread"`
}
