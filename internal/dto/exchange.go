package dto

import (
	"time"

	"github.com/seedswap/seed_exchange_app/internal/core/domain"
)

// CreateExchangeRequest defines the data needed to open an exchange request.
// The requester is taken from the authenticated context, the owner from the
// requested seed.
type CreateExchangeRequest struct {
	SeedRequestedID string `json:"seedRequestedID" binding:"required"`
	SeedOfferedID   string `json:"seedOfferedID" binding:"required"`
	Message         string `json:"message" binding:"max=500"`
}

// UpdateExchangeStatusRequest defines the data for a status transition.
type UpdateExchangeStatusRequest struct {
	Status domain.ExchangeStatus `json:"status" binding:"required,exchangestatus"`
}

// SeedSummary is the lightweight seed projection attached to enriched exchanges.
type SeedSummary struct {
	SeedID   string `json:"seedID"`
	Name     string `json:"name"`
	Variety  string `json:"variety"`
	ImageURL string `json:"imageURL"`
}

// UserSummary is the lightweight user projection attached to enriched
// exchanges. WhatsApp is only populated once the exchange status permits
// contact sharing.
type UserSummary struct {
	UserID   string `json:"userID"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp,omitempty"`
}

// EnrichedExchangeResponse is an exchange annotated with projections of the
// two seeds and the two users.
type EnrichedExchangeResponse struct {
	ExchangeID      string                `json:"exchangeID"`
	RequesterID     string                `json:"requesterID"`
	OwnerID         string                `json:"ownerID"`
	SeedRequestedID string                `json:"seedRequestedID"`
	SeedOfferedID   string                `json:"seedOfferedID"`
	Status          domain.ExchangeStatus `json:"status"`
	Message         string                `json:"message,omitempty"`
	Version         int64                 `json:"version"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
	AcceptedAt      *time.Time            `json:"acceptedAt,omitempty"`
	RejectedAt      *time.Time            `json:"rejectedAt,omitempty"`
	CompletedAt     *time.Time            `json:"completedAt,omitempty"`

	SeedRequested *SeedSummary `json:"seedRequested,omitempty"`
	SeedOffered   *SeedSummary `json:"seedOffered,omitempty"`
	Requester     *UserSummary `json:"requester,omitempty"`
	Owner         *UserSummary `json:"owner,omitempty"`

	// UserRole is set on history listings: the role the queried user played.
	UserRole domain.ExchangeRole `json:"userRole,omitempty"`
}

// UpdateSummaryResponse describes the outcome of a status transition.
type UpdateSummaryResponse struct {
	ExchangeID     string                `json:"exchangeID"`
	PreviousStatus domain.ExchangeStatus `json:"previousStatus"`
	NewStatus      domain.ExchangeStatus `json:"newStatus"`
	UpdatedBy      string                `json:"updatedBy"`
	Version        int64                 `json:"version"`
}

// ListExchangesResponse wraps a list of enriched exchanges.
type ListExchangesResponse struct {
	Exchanges []EnrichedExchangeResponse `json:"exchanges"`
	Count     int                        `json:"count"`
}

// ExchangeHistoryResponse wraps terminal exchanges plus their summary stats.
type ExchangeHistoryResponse struct {
	Exchanges []EnrichedExchangeResponse `json:"exchanges"`
	Summary   domain.HistorySummary      `json:"summary"`
}

// SeedActiveExchangesResponse reports pending/accepted exchanges touching a seed.
type SeedActiveExchangesResponse struct {
	HasActiveExchanges bool                    `json:"hasActiveExchanges"`
	Exchanges          []SeedExchangeRef       `json:"exchanges"`
	Counts             SeedActiveExchangeCount `json:"counts"`
}

// SeedExchangeRef is a minimal reference to an exchange involving a seed.
type SeedExchangeRef struct {
	ExchangeID  string                `json:"exchangeID"`
	Side        string                `json:"side"` // "requested" or "offered"
	Status      domain.ExchangeStatus `json:"status"`
	RequesterID string                `json:"requesterID"`
	OwnerID     string                `json:"ownerID"`
	CreatedAt   time.Time             `json:"createdAt"`
}

// SeedActiveExchangeCount partitions active exchanges by status.
type SeedActiveExchangeCount struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
}
