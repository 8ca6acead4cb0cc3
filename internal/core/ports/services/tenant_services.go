package services

import (
	"context"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
	"github.com/galeria-sm/stands_backend/internal/dto"
)

// TenantSvcFacade exposes the Tenant Assignment Registry operations.
type TenantSvcFacade interface {
	// CreateTenant creates a tenant. Duplicate names are allowed.
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error)

	// ListTenants retrieves a paginated tenant listing.
	ListTenants(ctx context.Context, limit, offset int) ([]domain.Tenant, error)

	// GetCurrent returns the stand's current assignment, or nil when unassigned.
	GetCurrent(ctx context.Context, standID string) (*domain.TenantAssignment, error)

	// GetHistory returns the stand's tenancy history, newest start date first,
	// including the current record.
	GetHistory(ctx context.Context, standID string) ([]domain.TenantAssignment, error)

	// Assign makes the tenant the stand's current one, superseding (not deleting)
	// any previous record in a single atomic transition.
	Assign(ctx context.Context, req dto.AssignTenantRequest, creatorUserID string) (*domain.TenantAssignment, error)

	// Remove clears the stand's current assignment. Idempotent when none exists.
	Remove(ctx context.Context, standID string, updaterUserID string) error
}
