package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/seedswap/seed_exchange_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRepo:     newPgxExchangeRepository(dbPool),
		SeedRepo:         newPgxSeedRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
	}
}
