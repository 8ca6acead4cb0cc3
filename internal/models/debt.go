package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtLine is the debt_lines table row.
type DebtLine struct {
	DebtID    string          `db:"debt_id"`
	StandID   string          `db:"stand_id"`
	ConceptID string          `db:"concept_id"`
	DebtDate  time.Time       `db:"debt_date"`
	Amount    decimal.Decimal `db:"amount"`
	LateFee   decimal.Decimal `db:"late_fee"`
	TotalPaid decimal.Decimal `db:"total_paid"`
	Settled   bool            `db:"settled"`
	Active    bool            `db:"active"`
	TenantID  *string         `db:"tenant_id"`
	AuditFields
}
