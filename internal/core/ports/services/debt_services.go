package services

import (
	"context"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
	"github.com/galeria-sm/stands_backend/internal/dto"
)

// DebtSvcFacade exposes the Debt Line Ledger operations.
type DebtSvcFacade interface {
	// CreateDebtLine registers one obligation. The line is always created pending
	// (never pre-settled). A tenantResponsible reference must match the stand's
	// current assignment and requires the concept's tenantPays flag.
	CreateDebtLine(ctx context.Context, req dto.CreateDebtLineRequest, creatorUserID string) (*domain.DebtLine, error)

	// BatchCreateDebtLines registers one line per entry with monto > 0 or mora > 0.
	// Lines are independent: failures are reported per stand and do not roll back
	// sibling lines.
	BatchCreateDebtLines(ctx context.Context, req dto.BatchCreateDebtLinesRequest, creatorUserID string) (*dto.BatchDebtResult, error)

	// GetDebtLineByID retrieves one line.
	GetDebtLineByID(ctx context.Context, debtID string) (*domain.DebtLine, error)

	// ListDebtLines retrieves a filtered, paginated listing.
	ListDebtLines(ctx context.Context, params dto.ListDebtLinesParams) ([]domain.DebtLine, *string, error)

	// ListOutstanding returns the stand's lines with positive balance, excluding any
	// already drafted onto the in-progress receipt.
	ListOutstanding(ctx context.Context, standID string, excludeDebtIDs []string) ([]domain.DebtLine, error)

	// UpdateDebtLine edits monto/mora/concept/stand/date. Lowering monto+mora below
	// totalPagado is a caller error, surfaced, never silently clamped.
	UpdateDebtLine(ctx context.Context, debtID string, req dto.UpdateDebtLineRequest, updaterUserID string) (*domain.DebtLine, error)

	// SetSettled toggles the settled flag. Settling a line whose balance is still
	// positive is rejected; reopening is always allowed.
	SetSettled(ctx context.Context, debtID string, settled bool, updaterUserID string) (*domain.DebtLine, error)

	// DeactivateDebtLine soft-removes a line.
	DeactivateDebtLine(ctx context.Context, debtID string, updaterUserID string) error

	// DeleteDebtLine hard-deletes an unreferenced line; referenced lines return
	// ErrConflict and must be deactivated instead.
	DeleteDebtLine(ctx context.Context, debtID string) error
}
