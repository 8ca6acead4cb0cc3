package dto

import (
	"time"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
)

// CreateUserRequest registers a dashboard user.
type CreateUserRequest struct {
	Username string          `json:"username" binding:"required,min=3"`
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"omitempty,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=USER ADMIN SUPERADMIN"`
}

// UpdateUserRequest edits a user. Nil fields are left unchanged.
type UpdateUserRequest struct {
	Name  *string          `json:"name,omitempty"`
	Email *string          `json:"email,omitempty" binding:"omitempty,email"`
	Role  *domain.UserRole `json:"role,omitempty" binding:"omitempty,oneof=USER ADMIN SUPERADMIN"`
}

// UserResponse is the wire shape of a user.
type UserResponse struct {
	UserID    string          `json:"userID"`
	Username  string          `json:"username"`
	Name      string          `json:"name"`
	Email     string          `json:"email,omitempty"`
	Role      domain.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ListUsersResponse wraps the user listing.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// LoginRequest is the username/password login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries a Google ID token obtained by the dashboard.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LoginResponse carries the issued access token. The refresh token travels in an
// http-only cookie, not in the body.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}
