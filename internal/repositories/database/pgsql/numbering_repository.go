package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/galeria-sm/stands_backend/internal/apperrors"
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portsrepo "github.com/galeria-sm/stands_backend/internal/core/ports/repositories"
)

type PgxNumberingRepository struct {
	BaseRepository
}

// newPgxNumberingRepository creates a new repository for document counters.
func newPgxNumberingRepository(pool *pgxpool.Pool) portsrepo.NumberingRepositoryFacade {
	return &PgxNumberingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NumberingRepositoryFacade = (*PgxNumberingRepository)(nil)

// PeekNextNumber reads the counter without locking or advancing it. The number a
// client sees here is advisory; assignment happens inside the receipt-persisting
// transaction.
func (r *PgxNumberingRepository) PeekNextNumber(ctx context.Context, docType domain.DocumentType) (int64, error) {
	var number int64
	err := r.Pool.QueryRow(ctx, `
		SELECT next_number FROM document_numberings WHERE document_type = $1;
	`, string(docType)).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewNotFoundError("document counter " + string(docType) + " not found")
		}
		return 0, apperrors.NewAppError(500, "failed to read document counter "+string(docType), err)
	}
	return number, nil
}
