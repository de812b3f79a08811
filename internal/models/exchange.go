package models

import "time"

// ExchangeStatus mirrors domain.ExchangeStatus for DB storage.
type ExchangeStatus string

// Exchange is the database representation of an exchange request.
type Exchange struct {
	ExchangeID      string
	RequesterID     string
	OwnerID         string
	SeedRequestedID string
	SeedOfferedID   string
	Status          ExchangeStatus
	Message         string
	Notes           string

	AcceptedAt  *time.Time
	AcceptedBy  *string
	RejectedAt  *time.Time
	RejectedBy  *string
	CompletedAt *time.Time
	CompletedBy *string

	Version int64

	AuditFields
}
