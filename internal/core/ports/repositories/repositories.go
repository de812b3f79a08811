package repositories

// RepositoryProvider bundles all repositories for dependency injection into
// the service container.
type RepositoryProvider struct {
	ExchangeRepo     ExchangeRepository
	SeedRepo         SeedRepository
	UserRepo         UserRepository
	NotificationRepo NotificationRepository
}
