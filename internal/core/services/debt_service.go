package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/galeria-sm/stands_backend/internal/apperrors"
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portsrepo "github.com/galeria-sm/stands_backend/internal/core/ports/repositories"
	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
	"github.com/galeria-sm/stands_backend/internal/dto"
	"github.com/galeria-sm/stands_backend/internal/middleware"
)

var (
	ErrConceptNotDebt     = errors.New("concept does not generate payable debt")
	ErrConceptInactive    = errors.New("concept is inactive")
	ErrTenantNotCurrent   = errors.New("tenant responsible is not the stand's current tenant")
	ErrTenantNotAllowed   = errors.New("concept does not charge the tenant")
	ErrAmountBelowPaid    = errors.New("monto plus mora cannot drop below the amount already paid")
	ErrBalanceOutstanding = errors.New("line still has an outstanding balance")
	ErrNegativeAmount     = errors.New("amounts cannot be negative")
)

// debtService implements the Debt Line Ledger operations.
type debtService struct {
	debtRepo    portsrepo.DebtRepositoryFacade
	conceptRepo portsrepo.ConceptRepositoryFacade
	standRepo   portsrepo.StandRepositoryFacade
	tenantRepo  portsrepo.TenantRepositoryFacade
}

// NewDebtService creates a new DebtService.
func NewDebtService(debtRepo portsrepo.DebtRepositoryFacade, conceptRepo portsrepo.ConceptRepositoryFacade, standRepo portsrepo.StandRepositoryFacade, tenantRepo portsrepo.TenantRepositoryFacade) portssvc.DebtSvcFacade {
	return &debtService{
		debtRepo:    debtRepo,
		conceptRepo: conceptRepo,
		standRepo:   standRepo,
		tenantRepo:  tenantRepo,
	}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

// resolveTenantSnapshot decides the responsible-tenant snapshot for a new line.
// The snapshot is taken from the stand's assignment active right now; it is not a
// live join and later reassignments must not change it.
func (s *debtService) resolveTenantSnapshot(ctx context.Context, concept *domain.DebtConcept, standID string, requested *string) (*string, error) {
	if !concept.TenantPays {
		if requested != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrTenantNotAllowed)
		}
		return nil, nil
	}

	current, err := s.tenantRepo.FindCurrentAssignment(ctx, standID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Unassigned stand: a tenant reference cannot be valid, absence is fine.
			if requested != nil {
				return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrTenantNotCurrent)
			}
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve current assignment for stand %s: %w", standID, err)
	}

	if requested != nil {
		if *requested != current.TenantID {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrTenantNotCurrent)
		}
		return requested, nil
	}
	tenantID := current.TenantID
	return &tenantID, nil
}

// validateAmounts rejects negative monto/mora.
func validateAmounts(monto, mora decimal.Decimal) error {
	if monto.IsNegative() || mora.IsNegative() {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNegativeAmount)
	}
	return nil
}

// CreateDebtLine registers a single obligation.
// Implements portssvc.DebtSvcFacade
func (s *debtService) CreateDebtLine(ctx context.Context, req dto.CreateDebtLineRequest, creatorUserID string) (*domain.DebtLine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAmounts(req.Monto, req.Mora); err != nil {
		return nil, err
	}

	concept, err := s.conceptRepo.FindConceptByID(ctx, req.ConceptID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch concept %s: %w", req.ConceptID, err)
	}
	if !concept.IsDebt {
		// Concepts with isDebt=false never enter the ledger.
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrConceptNotDebt)
	}
	if !concept.Active {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrConceptInactive)
	}

	if _, err := s.standRepo.FindStandByID(ctx, req.StandID); err != nil {
		return nil, fmt.Errorf("failed to fetch stand %s: %w", req.StandID, err)
	}

	tenantID, err := s.resolveTenantSnapshot(ctx, concept, req.StandID, req.TenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	line := domain.DebtLine{
		DebtID:    uuid.NewString(),
		StandID:   req.StandID,
		ConceptID: req.ConceptID,
		DebtDate:  req.DebtDate,
		Amount:    req.Monto,
		LateFee:   req.Mora,
		TotalPaid: decimal.Zero,
		Settled:   false, // New debts are never created pre-settled, regardless of caller input.
		Active:    true,
		TenantID:  tenantID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.debtRepo.SaveDebtLine(ctx, line); err != nil {
		logger.Error("Failed to save debt line", slog.String("error", err.Error()), slog.String("stand_id", req.StandID))
		return nil, fmt.Errorf("failed to save debt line: %w", err)
	}

	logger.Info("Debt line created", slog.String("debt_id", line.DebtID), slog.String("stand_id", line.StandID))
	return &line, nil
}

// BatchCreateDebtLines registers one line per stand entry with any non-zero amount.
// Entries where monto and mora are both zero are skipped. Lines are independent
// entities, so a failing stand is reported and the rest proceed; there is no
// cross-line rollback.
// Implements portssvc.DebtSvcFacade
func (s *debtService) BatchCreateDebtLines(ctx context.Context, req dto.BatchCreateDebtLinesRequest, creatorUserID string) (*dto.BatchDebtResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	concept, err := s.conceptRepo.FindConceptByID(ctx, req.ConceptID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch concept %s: %w", req.ConceptID, err)
	}
	if !concept.IsDebt {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrConceptNotDebt)
	}
	if !concept.Active {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrConceptInactive)
	}

	result := &dto.BatchDebtResult{}
	now := time.Now().UTC()

	for _, entry := range req.Entries {
		if entry.Monto.IsZero() && entry.Mora.IsZero() {
			result.Skipped = append(result.Skipped, entry.StandID)
			continue
		}
		if err := validateAmounts(entry.Monto, entry.Mora); err != nil {
			result.Failures = append(result.Failures, dto.BatchDebtFailure{StandID: entry.StandID, Error: err.Error()})
			continue
		}

		// Each line resolves its own snapshot from that stand's current assignment,
		// unless the caller suppressed it for this stand.
		var tenantID *string
		if concept.TenantPays && !entry.SuppressTenant {
			current, err := s.tenantRepo.FindCurrentAssignment(ctx, entry.StandID)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				result.Failures = append(result.Failures, dto.BatchDebtFailure{StandID: entry.StandID, Error: err.Error()})
				continue
			}
			if current != nil {
				id := current.TenantID
				tenantID = &id
			}
		}

		line := domain.DebtLine{
			DebtID:    uuid.NewString(),
			StandID:   entry.StandID,
			ConceptID: req.ConceptID,
			DebtDate:  req.DebtDate,
			Amount:    entry.Monto,
			LateFee:   entry.Mora,
			TotalPaid: decimal.Zero,
			Settled:   false,
			Active:    true,
			TenantID:  tenantID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
		if err := s.debtRepo.SaveDebtLine(ctx, line); err != nil {
			logger.Warn("Batch debt line failed", slog.String("stand_id", entry.StandID), slog.String("error", err.Error()))
			result.Failures = append(result.Failures, dto.BatchDebtFailure{StandID: entry.StandID, Error: err.Error()})
			continue
		}
		result.Created = append(result.Created, line)
	}

	logger.Info("Batch debt creation finished",
		slog.Int("created", len(result.Created)),
		slog.Int("skipped", len(result.Skipped)),
		slog.Int("failed", len(result.Failures)))
	return result, nil
}

// GetDebtLineByID retrieves one line.
// Implements portssvc.DebtSvcFacade
func (s *debtService) GetDebtLineByID(ctx context.Context, debtID string) (*domain.DebtLine, error) {
	line, err := s.debtRepo.FindDebtLineByID(ctx, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to find debt line %s: %w", debtID, err)
	}
	return line, nil
}

// ListDebtLines retrieves a filtered listing.
// Implements portssvc.DebtSvcFacade
func (s *debtService) ListDebtLines(ctx context.Context, params dto.ListDebtLinesParams) ([]domain.DebtLine, *string, error) {
	filter := portsrepo.DebtLineFilter{
		StandID:   params.StandID,
		ConceptID: params.ConceptID,
		Active:    params.Active,
		Settled:   params.Settled,
	}
	lines, nextToken, err := s.debtRepo.ListDebtLines(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list debt lines: %w", err)
	}
	return lines, nextToken, nil
}

// ListOutstanding returns the stand's payable lines, excluding those already on the
// receipt being composed.
// Implements portssvc.DebtSvcFacade
func (s *debtService) ListOutstanding(ctx context.Context, standID string, excludeDebtIDs []string) ([]domain.DebtLine, error) {
	lines, err := s.debtRepo.ListOutstandingByStand(ctx, standID, excludeDebtIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list outstanding lines for stand %s: %w", standID, err)
	}
	return lines, nil
}

// UpdateDebtLine edits a line directly.
// Implements portssvc.DebtSvcFacade
func (s *debtService) UpdateDebtLine(ctx context.Context, debtID string, req dto.UpdateDebtLineRequest, updaterUserID string) (*domain.DebtLine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	line, err := s.debtRepo.FindDebtLineByID(ctx, debtID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.ConceptID != nil {
		concept, err := s.conceptRepo.FindConceptByID(ctx, *req.ConceptID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch concept %s: %w", *req.ConceptID, err)
		}
		if !concept.IsDebt {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrConceptNotDebt)
		}
		line.ConceptID = *req.ConceptID
		updated = true
	}
	if req.StandID != nil {
		if _, err := s.standRepo.FindStandByID(ctx, *req.StandID); err != nil {
			return nil, fmt.Errorf("failed to fetch stand %s: %w", *req.StandID, err)
		}
		line.StandID = *req.StandID
		updated = true
	}
	if req.DebtDate != nil {
		line.DebtDate = *req.DebtDate
		updated = true
	}
	if req.Monto != nil {
		line.Amount = *req.Monto
		updated = true
	}
	if req.Mora != nil {
		line.LateFee = *req.Mora
		updated = true
	}
	if !updated {
		return line, nil
	}

	if err := validateAmounts(line.Amount, line.LateFee); err != nil {
		return nil, err
	}
	// Lowering the obligation below what was already collected is a caller error,
	// surfaced rather than clamped.
	if line.Amount.Add(line.LateFee).LessThan(line.TotalPaid) {
		return nil, fmt.Errorf("%w: %s (paid %s, new total %s)",
			apperrors.ErrValidation, ErrAmountBelowPaid, line.TotalPaid.String(), line.Amount.Add(line.LateFee).String())
	}

	line.LastUpdatedAt = time.Now().UTC()
	line.LastUpdatedBy = updaterUserID
	if err := s.debtRepo.UpdateDebtLine(ctx, *line); err != nil {
		logger.Error("Failed to update debt line", slog.String("error", err.Error()), slog.String("debt_id", debtID))
		return nil, fmt.Errorf("failed to update debt line: %w", err)
	}

	logger.Info("Debt line updated", slog.String("debt_id", debtID))
	return line, nil
}

// SetSettled toggles the settled flag. Settling requires a zero balance; reopening
// is always allowed.
// Implements portssvc.DebtSvcFacade
func (s *debtService) SetSettled(ctx context.Context, debtID string, settled bool, updaterUserID string) (*domain.DebtLine, error) {
	line, err := s.debtRepo.FindDebtLineByID(ctx, debtID)
	if err != nil {
		return nil, err
	}

	if settled && line.Balance().IsPositive() {
		return nil, fmt.Errorf("%w: %s (balance %s)", apperrors.ErrValidation, ErrBalanceOutstanding, line.Balance().String())
	}

	now := time.Now().UTC()
	if err := s.debtRepo.SetDebtLineSettled(ctx, debtID, settled, updaterUserID, now); err != nil {
		return nil, fmt.Errorf("failed to toggle settled state for %s: %w", debtID, err)
	}

	line.Settled = settled
	line.LastUpdatedAt = now
	line.LastUpdatedBy = updaterUserID
	return line, nil
}

// DeactivateDebtLine soft-removes a line.
// Implements portssvc.DebtSvcFacade
func (s *debtService) DeactivateDebtLine(ctx context.Context, debtID string, updaterUserID string) error {
	if _, err := s.debtRepo.FindDebtLineByID(ctx, debtID); err != nil {
		return err
	}
	if err := s.debtRepo.DeactivateDebtLine(ctx, debtID, updaterUserID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to deactivate debt line %s: %w", debtID, err)
	}
	return nil
}

// DeleteDebtLine hard-deletes an unreferenced line.
// Implements portssvc.DebtSvcFacade
func (s *debtService) DeleteDebtLine(ctx context.Context, debtID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	referenced, err := s.debtRepo.IsDebtLineReferenced(ctx, debtID)
	if err != nil {
		return fmt.Errorf("failed to check references for debt line %s: %w", debtID, err)
	}
	if referenced {
		return fmt.Errorf("%w: debt line %s is referenced by a receipt, deactivate it instead", apperrors.ErrConflict, debtID)
	}

	if err := s.debtRepo.DeleteDebtLine(ctx, debtID); err != nil {
		logger.Error("Failed to delete debt line", slog.String("error", err.Error()), slog.String("debt_id", debtID))
		return fmt.Errorf("failed to delete debt line: %w", err)
	}
	logger.Info("Debt line deleted", slog.String("debt_id", debtID))
	return nil
}
