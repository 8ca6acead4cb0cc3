package models

import "time"

// User is the users table row.
type User struct {
	UserID                 string     `db:"user_id"`
	Username               string     `db:"username"`
	Name                   string     `db:"name"`
	Email                  string     `db:"email"`
	PasswordHash           string     `db:"password_hash"`
	Role                   string     `db:"role"`
	RefreshTokenHash       *string    `db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time `db:"refresh_token_expiry_time"`
	DeletedAt              *time.Time `db:"deleted_at"`
	AuditFields
}
