package services

import (
	"context"
	"time"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
	"github.com/galeria-sm/stands_backend/internal/dto"
)

// UserSvcFacade manages dashboard users.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error

	// AuthenticateUser verifies username/password and returns the user, or
	// ErrUnauthorized.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// FindByEmail returns the user registered under the given email, used by the
	// Google sign-in flow. Unknown emails are ErrNotFound; no auto-provisioning.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// StoreRefreshTokenHash persists the hashed refresh token for the user.
	StoreRefreshTokenHash(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error

	// ClearRefreshToken invalidates the user's stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, userID string) error
}

// TokenSvcFacade issues and validates authentication tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a JWT carrying the user's ID and role.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates an opaque refresh token and stores its hash on
	// the user. Only the raw token and its expiry are returned to the caller.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken checks a presented refresh token against the
	// user's stored hash and expiry.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)

	// ValidateGoogleIDToken verifies a Google ID token and returns the asserted
	// email address.
	ValidateGoogleIDToken(ctx context.Context, idToken string) (string, error)
}
