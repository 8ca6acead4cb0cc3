package domain

import "time"

// Tenant is a person renting a stand. Names are not unique; identity for the
// ledger lives in the assignment records, not here.
type Tenant struct {
	TenantID string `json:"tenantID"`
	Name     string `json:"name"`
	AuditFields
}

// TenantAssignment is one entry of a stand's tenancy history. For a given stand at
// most one assignment has Current=true at any instant; reassignment supersedes the
// previous record, it never deletes it.
type TenantAssignment struct {
	AssignmentID string    `json:"assignmentID"`
	StandID      string    `json:"standID"`
	TenantID     string    `json:"tenantID"`
	TenantName   string    `json:"tenantName"` // Joined for display, not persisted on the record
	StartDate    time.Time `json:"startDate"`
	Current      bool      `json:"current"`
	AuditFields
}
