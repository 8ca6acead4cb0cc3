package domain

import "time"

// UserRole is the global role of a dashboard user. Roles gate which operations the
// API exposes; the ledger's own invariants apply identically regardless of role.
type UserRole string

const (
	RoleUser       UserRole = "USER"
	RoleAdmin      UserRole = "ADMIN"
	RoleSuperAdmin UserRole = "SUPERADMIN"
)

// CanEdit reports whether the role may modify persisted receipts and ledger entries.
func (r UserRole) CanEdit() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// User is a dashboard operator.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	// Refresh token state, stored hashed.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
