package dto

import (
	"time"

	"github.com/seedswap/seed_exchange_app/internal/core/domain"
)

// CreateSeedRequest defines the data needed to register a seed listing.
type CreateSeedRequest struct {
	Name                   string `json:"name" binding:"required"`
	Variety                string `json:"variety"`
	Category               string `json:"category"`
	Description            string `json:"description"`
	ImageURL               string `json:"imageURL"`
	IsAvailableForExchange *bool  `json:"isAvailableForExchange"` // defaults to true
}

// UpdateSeedRequest defines the fields a seed owner may change.
// Pointers distinguish "not provided" from zero values.
type UpdateSeedRequest struct {
	Name                   *string `json:"name"`
	Variety                *string `json:"variety"`
	Category               *string `json:"category"`
	Description            *string `json:"description"`
	ImageURL               *string `json:"imageURL"`
	IsAvailableForExchange *bool   `json:"isAvailableForExchange"`
}

// SeedResponse defines the data returned for a seed listing.
type SeedResponse struct {
	SeedID                 string    `json:"seedID"`
	OwnerID                string    `json:"ownerID"`
	Name                   string    `json:"name"`
	Variety                string    `json:"variety"`
	Category               string    `json:"category"`
	Description            string    `json:"description"`
	ImageURL               string    `json:"imageURL"`
	IsActive               bool      `json:"isActive"`
	IsAvailableForExchange bool      `json:"isAvailableForExchange"`
	CreatedAt              time.Time `json:"createdAt"`
	LastUpdatedAt          time.Time `json:"lastUpdatedAt"`
}

// ToSeedResponse converts a domain.Seed to its response DTO.
func ToSeedResponse(s *domain.Seed) SeedResponse {
	return SeedResponse{
		SeedID:                 s.SeedID,
		OwnerID:                s.OwnerID,
		Name:                   s.Name,
		Variety:                s.Variety,
		Category:               s.Category,
		Description:            s.Description,
		ImageURL:               s.ImageURL,
		IsActive:               s.IsActive,
		IsAvailableForExchange: s.IsAvailableForExchange,
		CreatedAt:              s.CreatedAt,
		LastUpdatedAt:          s.LastUpdatedAt,
	}
}

// ListSeedsParams defines query parameters for listing seeds.
type ListSeedsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListSeedsResponse wraps the list of seeds.
type ListSeedsResponse struct {
	Seeds []SeedResponse `json:"seeds"`
	Count int            `json:"count"`
}
