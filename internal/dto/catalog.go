package dto

import (
	"time"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
)

// CreateConceptRequest creates a debt concept.
type CreateConceptRequest struct {
	Description string `json:"description" binding:"required"`
	IsDebt      bool   `json:"isDebt"`
	TenantPays  bool   `json:"tenantPays"`
}

// UpdateConceptRequest edits a concept. Nil fields are left unchanged.
type UpdateConceptRequest struct {
	Description *string `json:"description,omitempty"`
	IsDebt      *bool   `json:"isDebt,omitempty"`
	TenantPays  *bool   `json:"tenantPays,omitempty"`
}

// ConceptResponse is the wire shape of a concept.
type ConceptResponse struct {
	ConceptID   string    `json:"conceptID"`
	Description string    `json:"description"`
	IsDebt      bool      `json:"isDebt"`
	TenantPays  bool      `json:"tenantPays"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToConceptResponse converts a domain.DebtConcept.
func ToConceptResponse(c *domain.DebtConcept) ConceptResponse {
	return ConceptResponse{
		ConceptID:   c.ConceptID,
		Description: c.Description,
		IsDebt:      c.IsDebt,
		TenantPays:  c.TenantPays,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
	}
}

// CreateStandRequest creates a stand.
type CreateStandRequest struct {
	Description string  `json:"description" binding:"required"`
	Level       int     `json:"level" binding:"required"`
	ClientID    *string `json:"clientID,omitempty"`
}

// UpdateStandRequest edits a stand. Nil fields are left unchanged.
type UpdateStandRequest struct {
	Description *string `json:"description,omitempty"`
	Level       *int    `json:"level,omitempty"`
	ClientID    *string `json:"clientID,omitempty"`
}

// StandResponse is the wire shape of a stand.
type StandResponse struct {
	StandID     string    `json:"standID"`
	Description string    `json:"description"`
	Level       int       `json:"level"`
	ClientID    *string   `json:"clientID,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToStandResponse converts a domain.Stand.
func ToStandResponse(s *domain.Stand) StandResponse {
	return StandResponse{
		StandID:     s.StandID,
		Description: s.Description,
		Level:       s.Level,
		ClientID:    s.ClientID,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
	}
}

// CreateClientRequest creates a stand owner.
type CreateClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document"`
}

// UpdateClientRequest edits a client. Nil fields are left unchanged.
type UpdateClientRequest struct {
	Name     *string `json:"name,omitempty"`
	Document *string `json:"document,omitempty"`
}

// ClientResponse is the wire shape of a client.
type ClientResponse struct {
	ClientID string `json:"clientID"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Active   bool   `json:"active"`
}

// ToClientResponse converts a domain.Client.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID: c.ClientID,
		Name:     c.Name,
		Document: c.Document,
		Active:   c.Active,
	}
}

// CreatePaymentMethodRequest creates a payment method catalog entry.
type CreatePaymentMethodRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCollectingEntityRequest creates a collecting entity catalog entry.
type CreateCollectingEntityRequest struct {
	Name string `json:"name" binding:"required"`
}
