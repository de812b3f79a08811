package domain

import "time"

// NotificationType identifies which template the presentation layer renders.
// The core stores only the type key and name projections; formatting lives
// outside this module.
type NotificationType string

const (
	NotificationExchangeRequest   NotificationType = "exchange_request"
	NotificationExchangeAccepted  NotificationType = "exchange_accepted"
	NotificationExchangeRejected  NotificationType = "exchange_rejected"
	NotificationExchangeCompleted NotificationType = "exchange_completed"
	NotificationSystemMessage     NotificationType = "system_message"
)

// IsValid reports whether t is a known notification type.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationExchangeRequest, NotificationExchangeAccepted,
		NotificationExchangeRejected, NotificationExchangeCompleted,
		NotificationSystemMessage:
		return true
	}
	return false
}

// NotificationTypeForStatus maps a lifecycle transition target to the
// notification type sent to the counterpart.
func NotificationTypeForStatus(s ExchangeStatus) NotificationType {
	switch s {
	case StatusAccepted:
		return NotificationExchangeAccepted
	case StatusRejected:
		return NotificationExchangeRejected
	case StatusCompleted:
		return NotificationExchangeCompleted
	}
	return NotificationSystemMessage
}

// Notification is a stored user-facing alert.
type Notification struct {
	NotificationID    string            `json:"notificationID"`
	UserID            string            `json:"userID"`
	Type              NotificationType  `json:"type"`
	RelatedExchangeID string            `json:"relatedExchangeID,omitempty"`
	Data              map[string]string `json:"data,omitempty"`
	IsRead            bool              `json:"isRead"`
	CreatedAt         time.Time         `json:"createdAt"`
}
