package dto

import (
	"time"

	"github.com/seedswap/seed_exchange_app/internal/core/domain"
)

// UserStatsResponse defines the data returned for derived user statistics.
type UserStatsResponse struct {
	SeedsRegistered    int                      `json:"seedsRegistered"`
	ExchangesCompleted int                      `json:"exchangesCompleted"`
	ExchangesPending   int                      `json:"exchangesPending"`
	MostRequestedSeed  domain.MostRequestedSeed `json:"mostRequestedSeed"`
	LastCalculated     time.Time                `json:"lastCalculated"`
	FromCache          bool                     `json:"fromCache"`
}

// UserStatsParams defines query parameters for the stats endpoint.
type UserStatsParams struct {
	Refresh bool `form:"refresh,default=false"`
}
