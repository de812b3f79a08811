package models

import "time"

// Notification is the database representation of a stored alert.
// Data is persisted as a JSONB column.
type Notification struct {
	NotificationID    string
	UserID            string
	Type              string
	RelatedExchangeID *string
	Data              map[string]string
	IsRead            bool
	CreatedAt         time.Time
}
