package services

import (
	"context"

	"github.com/seedswap/seed_exchange_app/internal/core/domain"
	"github.com/seedswap/seed_exchange_app/internal/dto"
)

// UserSvcFacade defines user registration and profile operations.
type UserSvcFacade interface {
	// RegisterUser creates a new user with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// GetUserByID retrieves a specific user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// AuthenticateUser verifies credentials and returns the user on success.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// UpdateUserProfile updates profile fields and privacy settings.
	UpdateUserProfile(ctx context.Context, userID string, req dto.UpdateUserProfileRequest) (*domain.User, error)
}

// TokenSvc issues bearer tokens for authenticated users.
type TokenSvc interface {
	// GenerateToken issues a signed JWT whose subject is the user ID.
	GenerateToken(ctx context.Context, userID string) (token string, expiresAt int64, err error)
}
