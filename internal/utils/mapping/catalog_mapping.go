package mapping

import (
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	"github.com/galeria-sm/stands_backend/internal/models"
)

// ToModelConcept converts a domain DebtConcept to a model DebtConcept
func ToModelConcept(d domain.DebtConcept) models.DebtConcept {
	return models.DebtConcept{
		ConceptID:   d.ConceptID,
		Description: d.Description,
		IsDebt:      d.IsDebt,
		TenantPays:  d.TenantPays,
		Active:      d.Active,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainConcept converts a model DebtConcept to a domain DebtConcept
func ToDomainConcept(m models.DebtConcept) domain.DebtConcept {
	return domain.DebtConcept{
		ConceptID:   m.ConceptID,
		Description: m.Description,
		IsDebt:      m.IsDebt,
		TenantPays:  m.TenantPays,
		Active:      m.Active,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPaymentMethod converts a domain PaymentMethod to a model PaymentMethod
func ToModelPaymentMethod(d domain.PaymentMethod) models.PaymentMethod {
	return models.PaymentMethod{
		PaymentMethodID: d.PaymentMethodID,
		Name:            d.Name,
		Active:          d.Active,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentMethod converts a model PaymentMethod to a domain PaymentMethod
func ToDomainPaymentMethod(m models.PaymentMethod) domain.PaymentMethod {
	return domain.PaymentMethod{
		PaymentMethodID: m.PaymentMethodID,
		Name:            m.Name,
		Active:          m.Active,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCollectingEntity converts a domain CollectingEntity to a model CollectingEntity
func ToModelCollectingEntity(d domain.CollectingEntity) models.CollectingEntity {
	return models.CollectingEntity{
		EntityID:    d.EntityID,
		Name:        d.Name,
		Active:      d.Active,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCollectingEntity converts a model CollectingEntity to a domain CollectingEntity
func ToDomainCollectingEntity(m models.CollectingEntity) domain.CollectingEntity {
	return domain.CollectingEntity{
		EntityID:    m.EntityID,
		Name:        m.Name,
		Active:      m.Active,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
