package services

import (
	"context"
	"time"

	portssvc "github.com/seedswap/seed_exchange_app/internal/core/ports/services"
	"github.com/seedswap/seed_exchange_app/internal/platform/config"
	"github.com/seedswap/seed_exchange_app/internal/utils"
)

// tokenService implements the TokenSvc interface using HMAC-signed JWTs.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new token service
func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{cfg: cfg}
}

// Ensure tokenService implements the TokenSvc interface
var _ portssvc.TokenSvc = (*tokenService)(nil)

func (s *tokenService) GenerateToken(ctx context.Context, userID string) (string, int64, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", 0, err
	}
	return token, expiryTime.Unix(), nil
}
