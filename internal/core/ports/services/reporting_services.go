package services

import (
	"context"
	"time"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
)

// ReportingSvcFacade exposes the financial report aggregates.
type ReportingSvcFacade interface {
	ConceptCollection(ctx context.Context, from, to time.Time) ([]domain.ConceptCollectionRow, error)
	Debtors(ctx context.Context) ([]domain.DebtorRow, error)
	IncomeExpenseSummary(ctx context.Context, from, to time.Time) (*domain.IncomeExpenseSummary, error)
}
