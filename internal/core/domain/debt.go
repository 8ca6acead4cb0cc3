package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtLine is a single debt obligation: one concept against one stand for one date.
// Amount is the principal ("monto"), LateFee the accumulated surcharge ("mora"),
// TotalPaid the cumulative amount allocated by receipts. Settled flips to true when
// an allocation brings the balance to zero.
type DebtLine struct {
	DebtID    string          `json:"debtID"` // Primary key (UUID)
	StandID   string          `json:"standID"`
	ConceptID string          `json:"conceptID"`
	DebtDate  time.Time       `json:"debtDate"`
	Amount    decimal.Decimal `json:"monto"`
	LateFee   decimal.Decimal `json:"mora"`
	TotalPaid decimal.Decimal `json:"totalPagado"`
	Settled   bool            `json:"estado"`
	Active    bool            `json:"active"`
	// TenantID is the responsible-tenant snapshot taken at creation time. It is the
	// assignment active when the debt was registered, not a live join; it must stay
	// stable across later reassignments so "who owed this" survives.
	TenantID *string `json:"tenantID,omitempty"`
	AuditFields

	// Joined display fields, populated by list queries.
	Concept *DebtConcept `json:"concept,omitempty"`
	Stand   *Stand       `json:"stand,omitempty"`
	Tenant  *Tenant      `json:"tenantResponsible,omitempty"`
}

// Balance returns max(0, monto + mora - totalPagado).
func (d DebtLine) Balance() decimal.Decimal {
	b := d.Amount.Add(d.LateFee).Sub(d.TotalPaid)
	if b.IsNegative() {
		return decimal.Zero
	}
	return b
}

// Outstanding reports whether the line still carries a positive balance.
func (d DebtLine) Outstanding() bool {
	return d.Balance().IsPositive()
}

// AfterAllocation returns the paid total and settled state the line would have
// after allocating amount to it. The line settles exactly when the allocation
// brings the balance to zero. Callers must have checked the amount against
// Balance() first; this computes the effect, it does not validate.
func (d DebtLine) AfterAllocation(amount decimal.Decimal) (decimal.Decimal, bool) {
	paid := d.TotalPaid.Add(amount)
	settled := d.Amount.Add(d.LateFee).Sub(paid).LessThanOrEqual(decimal.Zero)
	return paid, settled
}
