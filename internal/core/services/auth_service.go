package services

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/idtoken"

	"github.com/galeria-sm/stands_backend/internal/apperrors"
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
	"github.com/galeria-sm/stands_backend/internal/platform/config"
	"github.com/galeria-sm/stands_backend/internal/utils"
)

// tokenService issues JWT access tokens and opaque refresh tokens, and validates
// Google ID tokens for the Google sign-in flow.
type tokenService struct {
	userSvc portssvc.UserSvcFacade
	cfg     *config.AppConfig
}

// NewTokenService creates a new TokenService.
func NewTokenService(userSvc portssvc.UserSvcFacade, cfg *config.AppConfig) portssvc.TokenSvcFacade {
	return &tokenService{userSvc: userSvc, cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a signed JWT carrying the user's ID and role.
// Implements portssvc.TokenSvcFacade
func (s *tokenService) GenerateAccessToken(_ context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().UTC().Add(s.cfg.AuthConfig.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.AuthConfig.JWTSecret, expiresAt)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiresAt, nil
}

// GenerateRefreshToken creates an opaque token and stores its hash on the user.
// Implements portssvc.TokenSvcFacade
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	expiresAt := time.Now().UTC().Add(s.cfg.AuthConfig.RefreshTokenExpiryDuration)
	if err := s.userSvc.StoreRefreshTokenHash(ctx, user.UserID, utils.HashToken(token), expiresAt); err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// ValidateAndParseRefreshToken checks a presented refresh token against the user's
// stored hash and expiry.
// Implements portssvc.TokenSvcFacade
func (s *tokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error) {
	user, err := s.userSvc.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().UTC().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CompareTokenHash(refreshToken, user.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// ValidateGoogleIDToken verifies a Google ID token against the configured client
// ID and returns the asserted email.
// Implements portssvc.TokenSvcFacade
func (s *tokenService) ValidateGoogleIDToken(ctx context.Context, rawToken string) (string, error) {
	payload, err := idtoken.Validate(ctx, rawToken, s.cfg.AuthConfig.GoogleClientID)
	if err != nil {
		return "", fmt.Errorf("%w: invalid google id token", apperrors.ErrUnauthorized)
	}
	email, ok := payload.Claims["email"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("%w: google id token has no email claim", apperrors.ErrUnauthorized)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return "", fmt.Errorf("%w: google email is not verified", apperrors.ErrUnauthorized)
	}
	return email, nil
}
