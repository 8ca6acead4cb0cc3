package mapping

import (
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	"github.com/galeria-sm/stands_backend/internal/models"
)

// ToModelTenant converts a domain Tenant to a model Tenant
func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:    d.TenantID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTenant converts a model Tenant to a domain Tenant
func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:    m.TenantID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAssignment converts a domain TenantAssignment to a model TenantAssignment.
// TenantName is a joined display field and does not persist on the row.
func ToModelAssignment(d domain.TenantAssignment) models.TenantAssignment {
	return models.TenantAssignment{
		AssignmentID: d.AssignmentID,
		StandID:      d.StandID,
		TenantID:     d.TenantID,
		StartDate:    d.StartDate,
		Current:      d.Current,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAssignment converts a model TenantAssignment plus its joined tenant name.
func ToDomainAssignment(m models.TenantAssignment, tenantName string) domain.TenantAssignment {
	return domain.TenantAssignment{
		AssignmentID: m.AssignmentID,
		StandID:      m.StandID,
		TenantID:     m.TenantID,
		TenantName:   tenantName,
		StartDate:    m.StartDate,
		Current:      m.Current,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
