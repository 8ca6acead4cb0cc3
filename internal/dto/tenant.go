package dto

import (
	"time"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
)

// CreateTenantRequest creates a tenant. Names are intentionally not unique.
type CreateTenantRequest struct {
	Name string `json:"name" binding:"required"`
}

// AssignTenantRequest assigns a tenant to a stand as of startDate. StandID is
// taken from the route, not the body.
type AssignTenantRequest struct {
	StandID   string    `json:"-"`
	TenantID  string    `json:"tenantId" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
}

// TenantResponse is the wire shape of a tenant.
type TenantResponse struct {
	TenantID  string    `json:"tenantID"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// AssignmentResponse is the wire shape of one tenancy history record.
type AssignmentResponse struct {
	AssignmentID string    `json:"assignmentID"`
	StandID      string    `json:"standID"`
	TenantID     string    `json:"tenantID"`
	TenantName   string    `json:"tenantName"`
	StartDate    time.Time `json:"startDate"`
	Current      bool      `json:"current"`
}

// ToTenantResponse converts a domain.Tenant.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:  t.TenantID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}
}

// ToAssignmentResponse converts a domain.TenantAssignment.
func ToAssignmentResponse(a *domain.TenantAssignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID: a.AssignmentID,
		StandID:      a.StandID,
		TenantID:     a.TenantID,
		TenantName:   a.TenantName,
		StartDate:    a.StartDate,
		Current:      a.Current,
	}
}

// ToAssignmentResponses converts a history slice.
func ToAssignmentResponses(history []domain.TenantAssignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, len(history))
	for i := range history {
		responses[i] = ToAssignmentResponse(&history[i])
	}
	return responses
}
