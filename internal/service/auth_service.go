package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/moderation-service/internal/auth"
	"github.com/spec-kit/moderation-service/internal/config"
	"github.com/spec-kit/moderation-service/internal/domain"
	"github.com/spec-kit/moderation-service/internal/repository"
)

// AuthService coordinates staff login. Token mechanics beyond issuing a
// role-bearing JWT live with the identity provider.
type AuthService struct {
	profiles   repository.ProfileRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, profiles repository.ProfileRepository) *AuthService {
	return &AuthService{
		profiles:   profiles,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// HashPassword hashes a plaintext password for account provisioning.
func (s *AuthService) HashPassword(password string) (string, error) {
	return auth.HashPassword(password, s.bcryptCost)
}

// TokenManager exposes the manager for middleware construction.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login authenticates a profile and returns a role-bearing token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Profile, string, time.Time, error) {
	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, errors.New("invalid credentials")
	}
	if profile.Status != domain.ProfileStatusActive {
		return nil, "", time.Time{}, errors.New("account not active")
	}
	if err := auth.ComparePassword(profile.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, errors.New("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(profile.ID, profile.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return profile, token, exp, nil
}
