package services

import (
	portsrepo "github.com/seedswap/seed_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/seedswap/seed_exchange_app/internal/core/ports/services"
	"github.com/seedswap/seed_exchange_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The entity cache backs both enrichment and stats name resolution, so it
	// is created first and shared.
	entities := NewEntityCache(repos.SeedRepo, repos.UserRepo, cfg.EntityCacheTTL, nil)

	container.Notification = NewNotificationService(repos.NotificationRepo)
	container.Stats = NewStatsService(repos.ExchangeRepo, repos.SeedRepo, entities, cfg.StatsCacheTTL, nil)

	container.Exchange = NewExchangeService(
		repos.ExchangeRepo,
		entities,
		WithNotificationDispatcher(container.Notification),
		WithStatsInvalidator(container.Stats),
	)

	container.Seed = NewSeedService(
		repos.SeedRepo,
		entities,
		WithExchangeChecker(container.Exchange),
		WithSeedStatsInvalidator(container.Stats),
	)

	container.User = NewUserService(repos.UserRepo, entities)
	container.Token = NewTokenService(cfg)

	return container
}
