package domain

import "time"

// MostRequestedSeed is the seed owned by a user that appears most often as
// the requested side of their received exchanges.
type MostRequestedSeed struct {
	SeedID       string `json:"seedID,omitempty"`
	Name         string `json:"name,omitempty"`
	RequestCount int    `json:"requestCount"`
}

// UserStats is a cached snapshot of derived per-user activity counts.
type UserStats struct {
	SeedsRegistered    int               `json:"seedsRegistered"`
	ExchangesCompleted int               `json:"exchangesCompleted"`
	ExchangesPending   int               `json:"exchangesPending"`
	MostRequestedSeed  MostRequestedSeed `json:"mostRequestedSeed"`
	LastCalculated     time.Time         `json:"lastCalculated"`
}

// HistorySummary aggregates a user's terminal exchanges by outcome and role.
type HistorySummary struct {
	Total       int `json:"total"`
	Completed   int `json:"completed"`
	Rejected    int `json:"rejected"`
	AsOwner     int `json:"asOwner"`
	AsRequester int `json:"asRequester"`
}
