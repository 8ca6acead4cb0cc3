package services

import (
	"context"
	"fmt"
	"time"

	"github.com/galeria-sm/stands_backend/internal/apperrors"
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portsrepo "github.com/galeria-sm/stands_backend/internal/core/ports/repositories"
	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
)

type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func validateRange(from, to time.Time) error {
	if to.Before(from) {
		return fmt.Errorf("%w: range end %s precedes start %s", apperrors.ErrValidation,
			to.Format("2006-01-02"), from.Format("2006-01-02"))
	}
	return nil
}

// ConceptCollection aggregates collected amounts per concept over the range.
// Implements portssvc.ReportingSvcFacade
func (s *reportingService) ConceptCollection(ctx context.Context, from, to time.Time) ([]domain.ConceptCollectionRow, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	rows, err := s.reportingRepo.GetConceptCollection(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to build concept collection report: %w", err)
	}
	return rows, nil
}

// Debtors lists stands carrying outstanding balances with their current tenants.
// Implements portssvc.ReportingSvcFacade
func (s *reportingService) Debtors(ctx context.Context) ([]domain.DebtorRow, error) {
	rows, err := s.reportingRepo.GetDebtors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build debtors report: %w", err)
	}
	return rows, nil
}

// IncomeExpenseSummary totals income and expense receipts over the range.
// Implements portssvc.ReportingSvcFacade
func (s *reportingService) IncomeExpenseSummary(ctx context.Context, from, to time.Time) (*domain.IncomeExpenseSummary, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	summary, err := s.reportingRepo.GetIncomeExpenseSummary(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to build income/expense summary: %w", err)
	}
	return summary, nil
}
