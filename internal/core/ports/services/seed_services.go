package services

import (
	"context"

	"github.com/seedswap/seed_exchange_app/internal/core/domain"
	"github.com/seedswap/seed_exchange_app/internal/dto"
)

// SeedReaderSvc defines read operations on seed listings.
type SeedReaderSvc interface {
	// GetSeedByID retrieves a specific seed.
	GetSeedByID(ctx context.Context, seedID string) (*domain.Seed, error)

	// ListSeedsByOwner retrieves a paginated list of a user's seeds.
	ListSeedsByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.Seed, error)
}

// SeedWriterSvc defines write operations on seed listings.
type SeedWriterSvc interface {
	// CreateSeed registers a new seed listing for the user.
	CreateSeed(ctx context.Context, ownerID string, req dto.CreateSeedRequest) (*domain.Seed, error)

	// UpdateSeed updates a seed the user owns.
	UpdateSeed(ctx context.Context, seedID string, req dto.UpdateSeedRequest, userID string) (*domain.Seed, error)

	// DeactivateSeed retires a listing. Refused while the seed has active
	// exchanges.
	DeactivateSeed(ctx context.Context, seedID string, userID string) error
}

// SeedSvcFacade combines all seed-related service interfaces.
type SeedSvcFacade interface {
	SeedReaderSvc
	SeedWriterSvc
}
