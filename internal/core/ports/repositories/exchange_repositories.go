package repositories

import (
	"context"

	"github.com/seedswap/seed_exchange_app/internal/core/domain"
)

// ExchangeReader defines read operations for exchange data.
type ExchangeReader interface {
	// FindExchangeByID retrieves a specific exchange by its unique identifier.
	FindExchangeByID(ctx context.Context, exchangeID string) (*domain.Exchange, error)

	// ListExchangesByOwner retrieves exchanges where the user is the owner,
	// newest first, optionally filtered by status.
	ListExchangesByOwner(ctx context.Context, ownerID string, statuses []domain.ExchangeStatus, limit int) ([]domain.Exchange, error)

	// ListExchangesByRequester retrieves exchanges where the user is the
	// requester, newest first, optionally filtered by status.
	ListExchangesByRequester(ctx context.Context, requesterID string, statuses []domain.ExchangeStatus, limit int) ([]domain.Exchange, error)

	// HasActiveExchange reports whether a pending or accepted exchange already
	// exists for the exact (requester, seedRequested, seedOffered) triple.
	// Point-in-time check; callers must not assume it holds past the read.
	HasActiveExchange(ctx context.Context, requesterID, seedRequestedID, seedOfferedID string) (bool, error)

	// ListActiveExchangesForSeed retrieves pending/accepted exchanges in which
	// the seed appears on either side.
	ListActiveExchangesForSeed(ctx context.Context, seedID string) ([]domain.Exchange, error)
}

// ExchangeWriter defines write operations for exchange data.
type ExchangeWriter interface {
	// SaveExchange persists a new exchange.
	SaveExchange(ctx context.Context, exchange domain.Exchange) error

	// UpdateExchangeStatus persists the status, transition fields and version
	// of an already-loaded exchange. Last write wins; no version check.
	UpdateExchangeStatus(ctx context.Context, exchange domain.Exchange) error

	// DeleteExchange hard-deletes an exchange. Administrative escape hatch,
	// not part of the lifecycle.
	DeleteExchange(ctx context.Context, exchangeID string) error
}

// ExchangeRepository combines all exchange repository interfaces.
type ExchangeRepository interface {
	ExchangeReader
	ExchangeWriter
}
