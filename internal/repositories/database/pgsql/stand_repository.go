package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/galeria-sm/stands_backend/internal/apperrors"
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portsrepo "github.com/galeria-sm/stands_backend/internal/core/ports/repositories"
	"github.com/galeria-sm/stands_backend/internal/models"
	"github.com/galeria-sm/stands_backend/internal/utils/mapping"
)

type PgxStandRepository struct {
	BaseRepository
}

// newPgxStandRepository creates a new repository for stand data.
func newPgxStandRepository(pool *pgxpool.Pool) portsrepo.StandRepositoryFacade {
	return &PgxStandRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StandRepositoryFacade = (*PgxStandRepository)(nil)

const standColumns = `stand_id, description, level, client_id, active, created_at, created_by, last_updated_at, last_updated_by`

func scanStand(row pgx.Row) (*models.Stand, error) {
	var m models.Stand
	err := row.Scan(
		&m.StandID,
		&m.Description,
		&m.Level,
		&m.ClientID,
		&m.Active,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveStand persists a new stand.
func (r *PgxStandRepository) SaveStand(ctx context.Context, stand domain.Stand) error {
	m := mapping.ToModelStand(stand)
	query := `
		INSERT INTO stands (` + standColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.StandID, m.Description, m.Level, m.ClientID, m.Active,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert stand "+m.StandID, err)
	}
	return nil
}

// FindStandByID retrieves a stand by its ID.
func (r *PgxStandRepository) FindStandByID(ctx context.Context, standID string) (*domain.Stand, error) {
	query := `SELECT ` + standColumns + ` FROM stands WHERE stand_id = $1;`
	m, err := scanStand(r.Pool.QueryRow(ctx, query, standID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find stand by ID "+standID, err)
	}
	d := mapping.ToDomainStand(*m)
	return &d, nil
}

// ListStands retrieves stands, optionally filtered by level and active flag.
func (r *PgxStandRepository) ListStands(ctx context.Context, level *int, activeOnly bool) ([]domain.Stand, error) {
	query := `SELECT ` + standColumns + ` FROM stands`
	conditions := []string{}
	args := []interface{}{}
	if level != nil {
		args = append(args, *level)
		conditions = append(conditions, "level = $"+strconv.Itoa(len(args)))
	}
	if activeOnly {
		conditions = append(conditions, "active")
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += ` ORDER BY level, description;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query stands", err)
	}
	defer rows.Close()

	stands := []domain.Stand{}
	for rows.Next() {
		m, err := scanStand(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stand row", err)
		}
		stands = append(stands, mapping.ToDomainStand(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating stand rows", err)
	}
	return stands, nil
}

// UpdateStand updates an existing stand.
func (r *PgxStandRepository) UpdateStand(ctx context.Context, stand domain.Stand) error {
	m := mapping.ToModelStand(stand)
	query := `
		UPDATE stands
		SET description = $2, level = $3, client_id = $4, last_updated_at = $5, last_updated_by = $6
		WHERE stand_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.StandID, m.Description, m.Level, m.ClientID, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update stand "+m.StandID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateStand soft-deletes a stand.
func (r *PgxStandRepository) DeactivateStand(ctx context.Context, standID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE stands
		SET active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE stand_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, standID, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate stand "+standID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteStand hard-deletes an unreferenced stand.
func (r *PgxStandRepository) DeleteStand(ctx context.Context, standID string) error {
	var referenced bool
	refQuery := `
		SELECT EXISTS (SELECT 1 FROM debt_lines WHERE stand_id = $1)
		    OR EXISTS (SELECT 1 FROM receipts WHERE stand_id = $1)
		    OR EXISTS (SELECT 1 FROM tenant_assignments WHERE stand_id = $1);
	`
	if err := r.Pool.QueryRow(ctx, refQuery, standID).Scan(&referenced); err != nil {
		return apperrors.NewAppError(500, "failed to check stand references "+standID, err)
	}
	if referenced {
		return fmt.Errorf("%w: stand %s has ledger or tenancy history, deactivate it instead", apperrors.ErrConflict, standID)
	}

	tag, err := r.Pool.Exec(ctx, `DELETE FROM stands WHERE stand_id = $1;`, standID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete stand "+standID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
