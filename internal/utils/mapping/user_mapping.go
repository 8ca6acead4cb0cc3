package mapping

import (
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	"github.com/galeria-sm/stands_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         string(d.Role),
		DeletedAt:    d.DeletedAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	if d.RefreshTokenHash != "" {
		hash := d.RefreshTokenHash
		m.RefreshTokenHash = &hash
	}
	m.RefreshTokenExpiryTime = d.RefreshTokenExpiryTime
	return m
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:                 m.UserID,
		Username:               m.Username,
		Name:                   m.Name,
		Email:                  m.Email,
		PasswordHash:           m.PasswordHash,
		Role:                   domain.UserRole(m.Role),
		RefreshTokenExpiryTime: m.RefreshTokenExpiryTime,
		DeletedAt:              m.DeletedAt,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
	if m.RefreshTokenHash != nil {
		d.RefreshTokenHash = *m.RefreshTokenHash
	}
	return d
}
