package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/seedswap/seed_exchange_app/internal/apperrors"
	"github.com/seedswap/seed_exchange_app/internal/core/domain"
	portsrepo "github.com/seedswap/seed_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/seedswap/seed_exchange_app/internal/core/ports/services"
	"github.com/seedswap/seed_exchange_app/internal/dto"
)

// seedService implements the SeedSvcFacade interface.
type seedService struct {
	BaseService
	seedRepo portsrepo.SeedRepository
	entities *EntityCache
	exchange portssvc.ExchangeReaderSvc
	stats    portssvc.StatsSvcFacade
}

// SeedServiceOption is a functional option for configuring the seed service
type SeedServiceOption func(*seedService)

// WithExchangeChecker adds the exchange reader used to guard deactivation
func WithExchangeChecker(exchange portssvc.ExchangeReaderSvc) SeedServiceOption {
	return func(s *seedService) {
		s.exchange = exchange
	}
}

// WithSeedStatsInvalidator adds the stats service dependency used for cache invalidation
func WithSeedStatsInvalidator(stats portssvc.StatsSvcFacade) SeedServiceOption {
	return func(s *seedService) {
		s.stats = stats
	}
}

// NewSeedService creates the seed listing service with the provided options
func NewSeedService(repo portsrepo.SeedRepository, entities *EntityCache, options ...SeedServiceOption) portssvc.SeedSvcFacade {
	svc := &seedService{
		seedRepo: repo,
		entities: entities,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure seedService implements the SeedSvcFacade interface
var _ portssvc.SeedSvcFacade = (*seedService)(nil)

func (s *seedService) GetSeedByID(ctx context.Context, seedID string) (*domain.Seed, error) {
	seed, err := s.seedRepo.FindSeedByID(ctx, seedID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find seed by ID",
				slog.String("seed_id", seedID))
		}
		return nil, err
	}
	return seed, nil
}

func (s *seedService) ListSeedsByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.Seed, error) {
	seeds, err := s.seedRepo.ListSeedsByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list seeds",
			slog.String("owner_id", ownerID))
		return nil, err
	}
	if seeds == nil {
		return []domain.Seed{}, nil
	}
	return seeds, nil
}

func (s *seedService) CreateSeed(ctx context.Context, ownerID string, req dto.CreateSeedRequest) (*domain.Seed, error) {
	available := true
	if req.IsAvailableForExchange != nil {
		available = *req.IsAvailableForExchange
	}

	now := time.Now()
	seed := domain.Seed{
		SeedID:                 uuid.NewString(),
		OwnerID:                ownerID,
		Name:                   req.Name,
		Variety:                req.Variety,
		Category:               req.Category,
		Description:            req.Description,
		ImageURL:               req.ImageURL,
		IsActive:               true,
		IsAvailableForExchange: available,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.seedRepo.SaveSeed(ctx, seed); err != nil {
		s.LogError(ctx, err, "Failed to save seed",
			slog.String("seed_id", seed.SeedID),
			slog.String("owner_id", ownerID))
		return nil, err
	}

	s.LogInfo(ctx, "Seed listing created",
		slog.String("seed_id", seed.SeedID),
		slog.String("owner_id", ownerID))
	s.invalidateStats(ownerID)
	return &seed, nil
}

func (s *seedService) UpdateSeed(ctx context.Context, seedID string, req dto.UpdateSeedRequest, userID string) (*domain.Seed, error) {
	seed, err := s.seedRepo.FindSeedByID(ctx, seedID)
	if err != nil {
		return nil, err
	}
	if seed.OwnerID != userID {
		return nil, fmt.Errorf("seed belongs to another user: %w", apperrors.ErrPermissionDenied)
	}

	if req.Name != nil {
		seed.Name = *req.Name
	}
	if req.Variety != nil {
		seed.Variety = *req.Variety
	}
	if req.Category != nil {
		seed.Category = *req.Category
	}
	if req.Description != nil {
		seed.Description = *req.Description
	}
	if req.ImageURL != nil {
		seed.ImageURL = *req.ImageURL
	}
	if req.IsAvailableForExchange != nil {
		seed.IsAvailableForExchange = *req.IsAvailableForExchange
	}
	seed.LastUpdatedAt = time.Now()

	if err := s.seedRepo.UpdateSeed(ctx, *seed); err != nil {
		s.LogError(ctx, err, "Failed to update seed",
			slog.String("seed_id", seedID))
		return nil, err
	}

	s.entities.InvalidateSeed(seedID)
	return seed, nil
}

func (s *seedService) DeactivateSeed(ctx context.Context, seedID string, userID string) error {
	seed, err := s.seedRepo.FindSeedByID(ctx, seedID)
	if err != nil {
		return err
	}
	if seed.OwnerID != userID {
		return fmt.Errorf("seed belongs to another user: %w", apperrors.ErrPermissionDenied)
	}

	if s.exchange != nil {
		activity, err := s.exchange.CheckSeedActiveExchanges(ctx, seedID)
		if err != nil {
			s.LogError(ctx, err, "Failed to check seed exchange activity",
				slog.String("seed_id", seedID))
			return err
		}
		if activity.HasActiveExchanges {
			return fmt.Errorf("seed has %d active exchanges: %w", activity.Counts.Total, apperrors.ErrValidation)
		}
	}

	if err := s.seedRepo.DeactivateSeed(ctx, seedID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate seed",
			slog.String("seed_id", seedID))
		return err
	}

	s.LogInfo(ctx, "Seed listing deactivated",
		slog.String("seed_id", seedID),
		slog.String("owner_id", userID))
	s.entities.InvalidateSeed(seedID)
	s.invalidateStats(userID)
	return nil
}

func (s *seedService) invalidateStats(userID string) {
	if s.stats != nil {
		s.stats.InvalidateUserStatsCache(userID)
	}
}
