package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConceptCollectionRow is one row of the per-concept collection report.
type ConceptCollectionRow struct {
	ConceptID   string          `json:"conceptID"`
	Description string          `json:"description"`
	Billed      decimal.Decimal `json:"billed"`    // monto + mora of all active lines
	Collected   decimal.Decimal `json:"collected"` // sum of totalPagado
	Outstanding decimal.Decimal `json:"outstanding"`
}

// DebtorRow is one row of the per-stand debtor report.
type DebtorRow struct {
	StandID          string          `json:"standID"`
	StandDescription string          `json:"standDescription"`
	TenantName       *string         `json:"tenantName,omitempty"` // Current tenant, if any
	Outstanding      decimal.Decimal `json:"outstanding"`
	OldestDebtDate   *time.Time      `json:"oldestDebtDate,omitempty"`
}

// IncomeExpenseSummary aggregates receipt totals for a date range.
type IncomeExpenseSummary struct {
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	IncomeTotal  decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal decimal.Decimal `json:"expenseTotal"`
	Net          decimal.Decimal `json:"net"`
}
