package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/recyclezone/marketplace/internal/domain/identity"
	"github.com/recyclezone/marketplace/internal/domain/shared"
	"go.uber.org/zap"
)

// TokenIssuer signs access tokens for an email
type TokenIssuer interface {
	GenerateToken(email string) (string, time.Time, error)
}

// TokenService issues access tokens to registered users
type TokenService struct {
	userRepo identity.UserRepository
	issuer   TokenIssuer
	logger   *zap.Logger
}

// NewTokenService creates a new TokenService
func NewTokenService(userRepo identity.UserRepository, issuer TokenIssuer, logger *zap.Logger) *TokenService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenService{
		userRepo: userRepo,
		issuer:   issuer,
		logger:   logger,
	}
}

// Issue signs a token for email. Only registered users receive one.
func (s *TokenService) Issue(ctx context.Context, email string) (*TokenResult, error) {
	normalized, err := identity.NormalizeEmail(email)
	if err != nil {
		return nil, shared.ErrUnknownUser
	}

	user, err := s.userRepo.FindByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Token requested for unknown email")
			return nil, shared.ErrUnknownUser
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	token, expiresAt, err := s.issuer.GenerateToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Debug("Access token issued", zap.String("user_id", user.ID.String()))
	return &TokenResult{AccessToken: token, ExpiresAt: expiresAt}, nil
}
