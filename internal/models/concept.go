package models

// DebtConcept is the concepts table row.
type DebtConcept struct {
	ConceptID   string `db:"concept_id"`
	Description string `db:"description"`
	IsDebt      bool   `db:"is_debt"`
	TenantPays  bool   `db:"tenant_pays"`
	Active      bool   `db:"active"`
	AuditFields
}
