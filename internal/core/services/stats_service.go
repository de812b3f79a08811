package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/seedswap/seed_exchange_app/internal/core/domain"
	portsrepo "github.com/seedswap/seed_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/seedswap/seed_exchange_app/internal/core/ports/services"
	"github.com/seedswap/seed_exchange_app/internal/platform/cache"
)

// statsListLimit bounds how many exchanges feed a single stats computation.
const statsListLimit = 500

// statsService implements the StatsSvcFacade interface. Snapshots are cached
// per user; lifecycle mutations invalidate rather than patch, so a stale
// snapshot can only survive until its next read.
type statsService struct {
	BaseService
	exchangeRepo portsrepo.ExchangeReader
	seedRepo     portsrepo.SeedReader
	entities     *EntityCache
	snapshots    *cache.TTLCache[domain.UserStats]
	clock        cache.Clock
}

// NewStatsService creates the stats service with the given snapshot TTL. A nil
// clock defaults to the system clock.
func NewStatsService(exchangeRepo portsrepo.ExchangeReader, seedRepo portsrepo.SeedReader, entities *EntityCache, ttl time.Duration, clock cache.Clock) portssvc.StatsSvcFacade {
	if clock == nil {
		clock = cache.SystemClock{}
	}
	return &statsService{
		exchangeRepo: exchangeRepo,
		seedRepo:     seedRepo,
		entities:     entities,
		snapshots:    cache.NewTTLCache[domain.UserStats](ttl, clock),
		clock:        clock,
	}
}

// Ensure statsService implements the StatsSvcFacade interface
var _ portssvc.StatsSvcFacade = (*statsService)(nil)

func (s *statsService) CalculateUserStats(ctx context.Context, userID string, forceRefresh bool) (*domain.UserStats, bool, error) {
	if !forceRefresh {
		if snap, ok := s.snapshots.Get(userID); ok {
			return &snap, true, nil
		}
	}

	stats, err := s.computeUserStats(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute user stats",
			slog.String("user_id", userID))
		return nil, false, err
	}

	s.snapshots.Set(userID, *stats)
	s.LogDebug(ctx, "User stats recomputed",
		slog.String("user_id", userID),
		slog.Int("seeds_registered", stats.SeedsRegistered))
	return stats, false, nil
}

func (s *statsService) InvalidateUserStatsCache(userID string) {
	s.snapshots.Invalidate(userID)
}

// computeUserStats gathers the three inputs concurrently, then folds them into
// a snapshot. The first error wins; the other results are discarded.
func (s *statsService) computeUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	var (
		wg          sync.WaitGroup
		asOwner     []domain.Exchange
		asRequester []domain.Exchange
		seedCount   int
		errOwner    error
		errReq      error
		errSeeds    error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		asOwner, errOwner = s.exchangeRepo.ListExchangesByOwner(ctx, userID, nil, statsListLimit)
	}()
	go func() {
		defer wg.Done()
		asRequester, errReq = s.exchangeRepo.ListExchangesByRequester(ctx, userID, nil, statsListLimit)
	}()
	go func() {
		defer wg.Done()
		seedCount, errSeeds = s.seedRepo.CountActiveSeedsByOwner(ctx, userID)
	}()
	wg.Wait()

	for _, err := range []error{errOwner, errReq, errSeeds} {
		if err != nil {
			return nil, err
		}
	}

	stats := &domain.UserStats{
		SeedsRegistered: seedCount,
		LastCalculated:  s.clock.Now(),
	}

	requestTally := make(map[string]int)
	for _, e := range asOwner {
		switch e.Status {
		case domain.StatusCompleted:
			stats.ExchangesCompleted++
		case domain.StatusPending:
			stats.ExchangesPending++
		}
		requestTally[e.SeedRequestedID]++
	}
	for _, e := range asRequester {
		switch e.Status {
		case domain.StatusCompleted:
			stats.ExchangesCompleted++
		case domain.StatusPending:
			stats.ExchangesPending++
		}
	}

	stats.MostRequestedSeed = s.mostRequested(ctx, requestTally)
	return stats, nil
}

// mostRequested picks the seed with the highest request tally and resolves its
// name. Ties break on seed ID to keep the result deterministic.
func (s *statsService) mostRequested(ctx context.Context, tally map[string]int) domain.MostRequestedSeed {
	var top domain.MostRequestedSeed
	for seedID, count := range tally {
		if count > top.RequestCount || (count == top.RequestCount && seedID < top.SeedID) {
			top.SeedID = seedID
			top.RequestCount = count
		}
	}
	if top.SeedID == "" {
		return top
	}
	if seed, err := s.entities.GetSeed(ctx, top.SeedID); err == nil {
		top.Name = seed.Name
	}
	return top
}
