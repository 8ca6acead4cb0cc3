package repositories

import (
	"context"
	"time"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
)

// DebtLineFilter narrows ListDebtLines. Nil fields are ignored.
type DebtLineFilter struct {
	StandID   *string
	ConceptID *string
	Active    *bool
	Settled   *bool
}

// DebtReader defines read operations for debt ledger data.
type DebtReader interface {
	// FindDebtLineByID retrieves a single debt line by its unique identifier.
	FindDebtLineByID(ctx context.Context, debtID string) (*domain.DebtLine, error)

	// ListDebtLines retrieves a paginated, filtered list of debt lines, newest first,
	// with concept/stand/tenant joined for display.
	ListDebtLines(ctx context.Context, filter DebtLineFilter, limit int, nextToken *string) ([]domain.DebtLine, *string, error)

	// ListOutstandingByStand returns every active debt line of a stand with a positive
	// balance, excluding the given IDs (lines already drafted onto an in-progress
	// receipt), oldest first.
	ListOutstandingByStand(ctx context.Context, standID string, excludeDebtIDs []string) ([]domain.DebtLine, error)

	// IsDebtLineReferenced reports whether any receipt detail references the line.
	IsDebtLineReferenced(ctx context.Context, debtID string) (bool, error)
}

// DebtWriter defines write operations for debt ledger data.
type DebtWriter interface {
	// SaveDebtLine persists a new debt line.
	SaveDebtLine(ctx context.Context, line domain.DebtLine) error

	// UpdateDebtLine updates monto, mora, concept, stand and date of an existing line.
	UpdateDebtLine(ctx context.Context, line domain.DebtLine) error

	// SetDebtLineSettled sets the settled flag.
	SetDebtLineSettled(ctx context.Context, debtID string, settled bool, updatedBy string, updatedAt time.Time) error

	// DeactivateDebtLine soft-removes a line.
	DeactivateDebtLine(ctx context.Context, debtID string, updatedBy string, updatedAt time.Time) error

	// DeleteDebtLine hard-deletes a line. Returns ErrConflict when the line is
	// referenced by a receipt detail.
	DeleteDebtLine(ctx context.Context, debtID string) error
}

// DebtRepositoryFacade combines all debt-ledger repository interfaces.
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}
