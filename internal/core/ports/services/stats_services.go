package services

import (
	"context"

	"github.com/seedswap/seed_exchange_app/internal/core/domain"
)

// StatsSvcFacade exposes cached derived statistics per user.
type StatsSvcFacade interface {
	// CalculateUserStats returns the user's activity snapshot, served from
	// cache when fresh unless forceRefresh is set. fromCache reports which
	// path was taken.
	CalculateUserStats(ctx context.Context, userID string, forceRefresh bool) (stats *domain.UserStats, fromCache bool, err error)

	// InvalidateUserStatsCache drops the cached snapshot for the user. The
	// only external mutation path into the stats cache: no partial updates,
	// always invalidate-then-recompute-on-next-read.
	InvalidateUserStatsCache(userID string)
}
