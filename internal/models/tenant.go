package models

import "time"

// Tenant is the tenants table row.
type Tenant struct {
	TenantID string `db:"tenant_id"`
	Name     string `db:"name"`
	AuditFields
}

// TenantAssignment is the tenant_assignments table row. A partial unique index on
// (stand_id) WHERE current enforces the single-current-record invariant.
type TenantAssignment struct {
	AssignmentID string    `db:"assignment_id"`
	StandID      string    `db:"stand_id"`
	TenantID     string    `db:"tenant_id"`
	StartDate    time.Time `db:"start_date"`
	Current      bool      `db:"current"`
	AuditFields
}
