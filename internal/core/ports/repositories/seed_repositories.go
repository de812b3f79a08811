package repositories

import (
	"context"
	"time"

	"github.com/seedswap/seed_exchange_app/internal/core/domain"
)

// SeedReader defines read operations for seed data.
type SeedReader interface {
	// FindSeedByID retrieves a specific seed by its unique identifier.
	FindSeedByID(ctx context.Context, seedID string) (*domain.Seed, error)

	// FindSeedsByIDs retrieves multiple seeds by their IDs. Missing IDs are
	// simply absent from the returned map.
	FindSeedsByIDs(ctx context.Context, seedIDs []string) (map[string]domain.Seed, error)

	// ListSeedsByOwner retrieves a paginated list of a user's seeds.
	ListSeedsByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.Seed, error)

	// CountActiveSeedsByOwner counts a user's active seed listings.
	CountActiveSeedsByOwner(ctx context.Context, ownerID string) (int, error)
}

// SeedWriter defines write operations for seed data.
type SeedWriter interface {
	// SaveSeed persists a new seed listing.
	SaveSeed(ctx context.Context, seed domain.Seed) error

	// UpdateSeed updates an existing seed's details.
	UpdateSeed(ctx context.Context, seed domain.Seed) error

	// DeactivateSeed marks a seed as inactive.
	DeactivateSeed(ctx context.Context, seedID string, now time.Time) error
}

// SeedRepository combines all seed repository interfaces.
type SeedRepository interface {
	SeedReader
	SeedWriter
}
