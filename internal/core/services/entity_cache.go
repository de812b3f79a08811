package services

import (
	"context"
	"time"

	"github.com/seedswap/seed_exchange_app/internal/core/domain"
	"github.com/seedswap/seed_exchange_app/internal/core/ports/repositories"
	"github.com/seedswap/seed_exchange_app/internal/platform/cache"
)

// EntityCache is a read-through TTL cache for seed and user lookups used when
// enriching exchange responses. Only successful lookups are cached: a miss is
// never stored, so a seed created moments after a failed lookup is visible on
// the next read. Staleness within the TTL window is accepted.
type EntityCache struct {
	BaseService
	seedRepo repositories.SeedReader
	userRepo repositories.UserReader
	seeds    *cache.TTLCache[domain.Seed]
	users    *cache.TTLCache[domain.User]
}

// NewEntityCache creates an EntityCache with the given TTL. A nil clock
// defaults to the system clock.
func NewEntityCache(seedRepo repositories.SeedReader, userRepo repositories.UserReader, ttl time.Duration, clock cache.Clock) *EntityCache {
	return &EntityCache{
		seedRepo: seedRepo,
		userRepo: userRepo,
		seeds:    cache.NewTTLCache[domain.Seed](ttl, clock),
		users:    cache.NewTTLCache[domain.User](ttl, clock),
	}
}

// GetSeed returns the seed, served from cache when fresh.
func (c *EntityCache) GetSeed(ctx context.Context, seedID string) (*domain.Seed, error) {
	if s, ok := c.seeds.Get(seedID); ok {
		return &s, nil
	}
	seed, err := c.seedRepo.FindSeedByID(ctx, seedID)
	if err != nil {
		return nil, err
	}
	c.seeds.Set(seedID, *seed)
	return seed, nil
}

// GetSeeds returns the requested seeds keyed by ID. Cached entries are served
// directly; the remainder is fetched in one batch. IDs that resolve to nothing
// are absent from the result.
func (c *EntityCache) GetSeeds(ctx context.Context, seedIDs []string) (map[string]domain.Seed, error) {
	result := make(map[string]domain.Seed, len(seedIDs))
	var missing []string
	for _, id := range seedIDs {
		if _, seen := result[id]; seen {
			continue
		}
		if s, ok := c.seeds.Get(id); ok {
			result[id] = s
		} else {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return result, nil
	}

	fetched, err := c.seedRepo.FindSeedsByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, seed := range fetched {
		c.seeds.Set(id, seed)
		result[id] = seed
	}
	return result, nil
}

// GetUser returns the user, served from cache when fresh.
func (c *EntityCache) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if u, ok := c.users.Get(userID); ok {
		return &u, nil
	}
	user, err := c.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.users.Set(userID, *user)
	return user, nil
}

// InvalidateSeed drops the cached seed, if any.
func (c *EntityCache) InvalidateSeed(seedID string) {
	c.seeds.Invalidate(seedID)
}

// InvalidateUser drops the cached user, if any.
func (c *EntityCache) InvalidateUser(userID string) {
	c.users.Invalidate(userID)
}
