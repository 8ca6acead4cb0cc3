package repositories

import (
	"context"
	"time"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
)

// TenantReader defines read operations for tenants and their assignments.
type TenantReader interface {
	// FindTenantByID retrieves a tenant by ID.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// ListTenants retrieves a paginated list of tenants.
	ListTenants(ctx context.Context, limit int, offset int) ([]domain.Tenant, error)

	// FindCurrentAssignment returns the stand's current assignment, or ErrNotFound
	// when the stand is unassigned.
	FindCurrentAssignment(ctx context.Context, standID string) (*domain.TenantAssignment, error)

	// ListAssignmentsByStand returns the full tenancy history of a stand, newest
	// start date first, including the current record.
	ListAssignmentsByStand(ctx context.Context, standID string) ([]domain.TenantAssignment, error)
}

// TenantWriter defines write operations for tenants and their assignments.
type TenantWriter interface {
	// SaveTenant persists a new tenant.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error

	// AssignTenant flips any existing current record of the stand to current=false and
	// inserts the new record as current, all inside one database transaction.
	AssignTenant(ctx context.Context, assignment domain.TenantAssignment) error

	// ClearCurrentAssignment sets the stand's current record to current=false without
	// inserting a replacement. It is a no-op when no current record exists.
	ClearCurrentAssignment(ctx context.Context, standID string, updatedBy string, updatedAt time.Time) error
}

// TenantRepositoryFacade combines all tenant-registry repository interfaces.
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
}
