package services

import (
	"context"

	"github.com/seedswap/seed_exchange_app/internal/core/domain"
	"github.com/seedswap/seed_exchange_app/internal/dto"
)

// ExchangeReaderSvc defines read operations on exchange requests.
type ExchangeReaderSvc interface {
	// GetExchangeByID retrieves a single exchange, enriched.
	GetExchangeByID(ctx context.Context, exchangeID string) (*dto.EnrichedExchangeResponse, error)

	// GetUserExchangesReceived lists exchanges where the user is the seed
	// owner, enriched, newest first.
	GetUserExchangesReceived(ctx context.Context, userID string) ([]dto.EnrichedExchangeResponse, error)

	// GetUserExchangesSent lists exchanges where the user is the requester,
	// enriched, newest first.
	GetUserExchangesSent(ctx context.Context, userID string) ([]dto.EnrichedExchangeResponse, error)

	// GetExchangeHistory lists the user's terminal exchanges across both
	// roles, de-duplicated, with summary counts.
	GetExchangeHistory(ctx context.Context, userID string) (*dto.ExchangeHistoryResponse, error)

	// CheckSeedActiveExchanges reports pending/accepted exchanges in which a
	// seed participates, used before deactivating a listing.
	CheckSeedActiveExchanges(ctx context.Context, seedID string) (*dto.SeedActiveExchangesResponse, error)
}

// ExchangeWriterSvc defines lifecycle mutations on exchange requests.
type ExchangeWriterSvc interface {
	// CreateExchangeRequest validates and persists a new pending exchange,
	// dispatches the creation notification and returns the enriched record.
	CreateExchangeRequest(ctx context.Context, requesterID string, req dto.CreateExchangeRequest) (*dto.EnrichedExchangeResponse, error)

	// UpdateExchangeStatus applies a permissioned status transition.
	UpdateExchangeStatus(ctx context.Context, exchangeID string, newStatus domain.ExchangeStatus, actorID string) (*dto.UpdateSummaryResponse, error)

	// DeleteExchange hard-deletes an exchange. Administrative escape hatch.
	DeleteExchange(ctx context.Context, exchangeID string) error
}

// ExchangeSvcFacade combines all exchange-related service interfaces.
type ExchangeSvcFacade interface {
	ExchangeReaderSvc
	ExchangeWriterSvc
}
