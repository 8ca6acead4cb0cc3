package mapping

import (
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	"github.com/galeria-sm/stands_backend/internal/models"
)

// ToModelDebtLine converts a domain DebtLine to a model DebtLine
func ToModelDebtLine(d domain.DebtLine) models.DebtLine {
	return models.DebtLine{
		DebtID:      d.DebtID,
		StandID:     d.StandID,
		ConceptID:   d.ConceptID,
		DebtDate:    d.DebtDate,
		Amount:      d.Amount,
		LateFee:     d.LateFee,
		TotalPaid:   d.TotalPaid,
		Settled:     d.Settled,
		Active:      d.Active,
		TenantID:    d.TenantID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDebtLine converts a model DebtLine to a domain DebtLine. Joined display
// fields are attached by the repository when the query provides them.
func ToDomainDebtLine(m models.DebtLine) domain.DebtLine {
	return domain.DebtLine{
		DebtID:      m.DebtID,
		StandID:     m.StandID,
		ConceptID:   m.ConceptID,
		DebtDate:    m.DebtDate,
		Amount:      m.Amount,
		LateFee:     m.LateFee,
		TotalPaid:   m.TotalPaid,
		Settled:     m.Settled,
		Active:      m.Active,
		TenantID:    m.TenantID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDebtLineSlice converts a slice of model debt lines.
func ToDomainDebtLineSlice(ms []models.DebtLine) []domain.DebtLine {
	out := make([]domain.DebtLine, len(ms))
	for i, m := range ms {
		out[i] = ToDomainDebtLine(m)
	}
	return out
}
