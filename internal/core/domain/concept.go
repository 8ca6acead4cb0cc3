package domain

// DebtConcept is a named category of obligation ("rent", "maintenance", "fine"...).
// Concepts with IsDebt=false are pure income categories and never appear in the
// debt ledger. TenantPays controls whether responsibility for lines under this
// concept defaults to the stand's tenant rather than its owning client.
type DebtConcept struct {
	ConceptID   string `json:"conceptID"` // Primary key (UUID)
	Description string `json:"description"`
	IsDebt      bool   `json:"isDebt"`
	TenantPays  bool   `json:"tenantPays"`
	Active      bool   `json:"active"` // Soft-delete flag; referenced concepts are never hard-deleted
	AuditFields
}
