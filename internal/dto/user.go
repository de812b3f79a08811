package dto

import (
	"time"

	"github.com/seedswap/seed_exchange_app/internal/core/domain"
)

// RegisterUserRequest defines the data needed to register a new user.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the credentials for a login attempt.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// UpdateUserProfileRequest defines the profile fields a user may change.
type UpdateUserProfileRequest struct {
	Name                  *string `json:"name"`
	Location              *string `json:"location"`
	WhatsAppNumber        *string `json:"whatsappNumber"`
	ProfileImageURL       *string `json:"profileImageURL"`
	AllowExchangeRequests *bool   `json:"allowExchangeRequests"`
	ShowWhatsApp          *bool   `json:"showWhatsApp"`
}

// UserResponse defines the data returned for a user profile.
type UserResponse struct {
	UserID          string              `json:"userID"`
	Name            string              `json:"name"`
	Email           string              `json:"email"`
	Location        string              `json:"location"`
	WhatsAppNumber  string              `json:"whatsappNumber"`
	ProfileImageURL string              `json:"profileImageURL"`
	Settings        domain.UserSettings `json:"settings"`
	IsComplete      bool                `json:"isComplete"`
	CreatedAt       time.Time           `json:"createdAt"`
	LastUpdatedAt   time.Time           `json:"lastUpdatedAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:          u.UserID,
		Name:            u.Name,
		Email:           u.Email,
		Location:        u.Location,
		WhatsAppNumber:  u.WhatsAppNumber,
		ProfileImageURL: u.ProfileImageURL,
		Settings:        u.Settings,
		IsComplete:      u.ProfileComplete(),
		CreatedAt:       u.CreatedAt,
		LastUpdatedAt:   u.LastUpdatedAt,
	}
}
