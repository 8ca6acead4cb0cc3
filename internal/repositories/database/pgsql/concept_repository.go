package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/galeria-sm/stands_backend/internal/apperrors"
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portsrepo "github.com/galeria-sm/stands_backend/internal/core/ports/repositories"
	"github.com/galeria-sm/stands_backend/internal/models"
	"github.com/galeria-sm/stands_backend/internal/utils/mapping"
)

type PgxConceptRepository struct {
	BaseRepository
}

// newPgxConceptRepository creates a new repository for debt concept data.
func newPgxConceptRepository(pool *pgxpool.Pool) portsrepo.ConceptRepositoryFacade {
	return &PgxConceptRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ConceptRepositoryFacade = (*PgxConceptRepository)(nil)

const conceptColumns = `concept_id, description, is_debt, tenant_pays, active, created_at, created_by, last_updated_at, last_updated_by`

func scanConcept(row pgx.Row) (*models.DebtConcept, error) {
	var m models.DebtConcept
	err := row.Scan(
		&m.ConceptID,
		&m.Description,
		&m.IsDebt,
		&m.TenantPays,
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

// SaveConcept persists a new concept.
func (r *PgxConceptRepository) SaveConcept(ctx context.Context, concept domain.DebtConcept) error {
	m := mapping.ToModelConcept(concept)
	query := `
		INSERT INTO concepts (` + conceptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ConceptID, m.Description, m.IsDebt, m.TenantPays, m.Active,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert concept "+m.ConceptID, err)
	}
	return nil
}

// FindConceptByID retrieves a concept by its ID.
func (r *PgxConceptRepository) FindConceptByID(ctx context.Context, conceptID string) (*domain.DebtConcept, error) {
	query := `SELECT ` + conceptColumns + ` FROM concepts WHERE concept_id = $1;`
	m, err := scanConcept(r.Pool.QueryRow(ctx, query, conceptID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find concept by ID "+conceptID, err)
	}
	d := mapping.ToDomainConcept(*m)
	return &d, nil
}

// ListConcepts retrieves all concepts, optionally active ones only.
func (r *PgxConceptRepository) ListConcepts(ctx context.Context, activeOnly bool) ([]domain.DebtConcept, error) {
	query := `SELECT ` + conceptColumns + ` FROM concepts`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY description;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query concepts", err)
	}
	defer rows.Close()

	concepts := []domain.DebtConcept{}
	for rows.Next() {
		m, err := scanConcept(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan concept row", err)
		}
		concepts = append(concepts, mapping.ToDomainConcept(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating concept rows", err)
	}
	return concepts, nil
}

// UpdateConcept updates an existing concept.
func (r *PgxConceptRepository) UpdateConcept(ctx context.Context, concept domain.DebtConcept) error {
	m := mapping.ToModelConcept(concept)
	query := `
		UPDATE concepts
		SET description = $2, is_debt = $3, tenant_pays = $4, last_updated_at = $5, last_updated_by = $6
		WHERE concept_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ConceptID, m.Description, m.IsDebt, m.TenantPays, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update concept "+m.ConceptID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateConcept soft-deletes a concept.
func (r *PgxConceptRepository) DeactivateConcept(ctx context.Context, conceptID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE concepts
		SET active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE concept_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, conceptID, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate concept "+conceptID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteConcept hard-deletes an unreferenced concept.
func (r *PgxConceptRepository) DeleteConcept(ctx context.Context, conceptID string) error {
	var referenced bool
	refQuery := `
		SELECT EXISTS (SELECT 1 FROM debt_lines WHERE concept_id = $1)
		    OR EXISTS (SELECT 1 FROM receipt_details WHERE concept_id = $1);
	`
	if err := r.Pool.QueryRow(ctx, refQuery, conceptID).Scan(&referenced); err != nil {
		return apperrors.NewAppError(500, "failed to check concept references "+conceptID, err)
	}
	if referenced {
		return fmt.Errorf("%w: concept %s is referenced, deactivate it instead", apperrors.ErrConflict, conceptID)
	}

	tag, err := r.Pool.Exec(ctx, `DELETE FROM concepts WHERE concept_id = $1;`, conceptID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete concept "+conceptID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
