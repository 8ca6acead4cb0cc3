package repositories

import (
	"context"
	"time"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
)

// ReportingRepository runs the aggregate queries behind the financial report views.
type ReportingRepository interface {
	// GetConceptCollection aggregates billed/collected/outstanding per concept for
	// debt lines dated within [from, to].
	GetConceptCollection(ctx context.Context, from, to time.Time) ([]domain.ConceptCollectionRow, error)

	// GetDebtors lists stands carrying outstanding balances with their current tenant.
	GetDebtors(ctx context.Context) ([]domain.DebtorRow, error)

	// GetIncomeExpenseSummary totals income and expense receipts created within
	// [from, to].
	GetIncomeExpenseSummary(ctx context.Context, from, to time.Time) (*domain.IncomeExpenseSummary, error)
}
