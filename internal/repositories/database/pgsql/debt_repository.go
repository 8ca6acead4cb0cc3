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
	"github.com/galeria-sm/stands_backend/internal/utils/pagination"
)

type PgxDebtRepository struct {
	BaseRepository
}

// newPgxDebtRepository creates a new repository for debt ledger data.
func newPgxDebtRepository(pool *pgxpool.Pool) portsrepo.DebtRepositoryFacade {
	return &PgxDebtRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

// debtJoinColumns selects the line plus the joined concept, stand and responsible
// tenant used for display.
const debtJoinColumns = `
	d.debt_id, d.stand_id, d.concept_id, d.debt_date, d.amount, d.late_fee, d.total_paid,
	d.settled, d.active, d.tenant_id,
	d.created_at, d.created_by, d.last_updated_at, d.last_updated_by,
	c.concept_id, c.description, c.is_debt, c.tenant_pays, c.active,
	s.stand_id, s.description, s.level, s.client_id, s.active,
	t.tenant_id, t.name`

const debtJoinFrom = `
	FROM debt_lines d
	JOIN concepts c ON c.concept_id = d.concept_id
	JOIN stands s ON s.stand_id = d.stand_id
	LEFT JOIN tenants t ON t.tenant_id = d.tenant_id`

// scanDebtLineJoined scans a joined row into a domain line with its display
// entities attached.
func scanDebtLineJoined(row pgx.Row) (*domain.DebtLine, error) {
	var m models.DebtLine
	var concept domain.DebtConcept
	var stand domain.Stand
	var tenantID, tenantName *string

	err := row.Scan(
		&m.DebtID, &m.StandID, &m.ConceptID, &m.DebtDate, &m.Amount, &m.LateFee, &m.TotalPaid,
		&m.Settled, &m.Active, &m.TenantID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		&concept.ConceptID, &concept.Description, &concept.IsDebt, &concept.TenantPays, &concept.Active,
		&stand.StandID, &stand.Description, &stand.Level, &stand.ClientID, &stand.Active,
		&tenantID, &tenantName,
	)
	if err != nil {
		return nil, err
	}

	line := mapping.ToDomainDebtLine(m)
	line.Concept = &concept
	line.Stand = &stand
	if tenantID != nil && tenantName != nil {
		line.Tenant = &domain.Tenant{TenantID: *tenantID, Name: *tenantName}
	}
	return &line, nil
}

// SaveDebtLine persists a new debt line.
func (r *PgxDebtRepository) SaveDebtLine(ctx context.Context, line domain.DebtLine) error {
	m := mapping.ToModelDebtLine(line)
	query := `
		INSERT INTO debt_lines (
			debt_id, stand_id, concept_id, debt_date, amount, late_fee, total_paid,
			settled, active, tenant_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DebtID, m.StandID, m.ConceptID, m.DebtDate, m.Amount, m.LateFee, m.TotalPaid,
		m.Settled, m.Active, m.TenantID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert debt line "+m.DebtID, err)
	}
	return nil
}

// FindDebtLineByID retrieves a debt line with its display entities joined.
func (r *PgxDebtRepository) FindDebtLineByID(ctx context.Context, debtID string) (*domain.DebtLine, error) {
	query := `SELECT ` + debtJoinColumns + debtJoinFrom + ` WHERE d.debt_id = $1;`
	line, err := scanDebtLineJoined(r.Pool.QueryRow(ctx, query, debtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find debt line by ID "+debtID, err)
	}
	return line, nil
}

// ListDebtLines retrieves a filtered page of debt lines, newest debt date first,
// using (debt_date, created_at) token pagination.
func (r *PgxDebtRepository) ListDebtLines(ctx context.Context, filter portsrepo.DebtLineFilter, limit int, nextToken *string) ([]domain.DebtLine, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	query := `SELECT ` + debtJoinColumns + debtJoinFrom + ` WHERE 1=1`
	args := []interface{}{}

	if filter.StandID != nil {
		args = append(args, *filter.StandID)
		query += ` AND d.stand_id = $` + strconv.Itoa(len(args))
	}
	if filter.ConceptID != nil {
		args = append(args, *filter.ConceptID)
		query += ` AND d.concept_id = $` + strconv.Itoa(len(args))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		query += ` AND d.active = $` + strconv.Itoa(len(args))
	}
	if filter.Settled != nil {
		args = append(args, *filter.Settled)
		query += ` AND d.settled = $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		lastDebtDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastDebtDate, lastCreatedAt)
		query += fmt.Sprintf(` AND (d.debt_date, d.created_at) < ($%d, $%d)`, len(args)-1, len(args))
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY d.debt_date DESC, d.created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query debt lines", err)
	}
	defer rows.Close()

	lines := []domain.DebtLine{}
	for rows.Next() {
		line, err := scanDebtLineJoined(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan debt line row", err)
		}
		lines = append(lines, *line)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating debt line rows", err)
	}

	var newNextToken *string
	if len(lines) > limit {
		lines = lines[:limit]
		last := lines[len(lines)-1]
		token := pagination.EncodeToken(last.DebtDate, last.CreatedAt)
		newNextToken = &token
	}
	return lines, newNextToken, nil
}

// ListOutstandingByStand returns every active, unsettled line of the stand with a
// positive balance, excluding the given IDs, oldest debt date first.
func (r *PgxDebtRepository) ListOutstandingByStand(ctx context.Context, standID string, excludeDebtIDs []string) ([]domain.DebtLine, error) {
	query := `SELECT ` + debtJoinColumns + debtJoinFrom + `
		WHERE d.stand_id = $1 AND d.active AND NOT d.settled
		  AND (d.amount + d.late_fee - d.total_paid) > 0`
	args := []interface{}{standID}
	if len(excludeDebtIDs) > 0 {
		args = append(args, excludeDebtIDs)
		query += ` AND NOT (d.debt_id = ANY($2))`
	}
	query += ` ORDER BY d.debt_date ASC, d.created_at ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query outstanding lines for stand "+standID, err)
	}
	defer rows.Close()

	lines := []domain.DebtLine{}
	for rows.Next() {
		line, err := scanDebtLineJoined(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan outstanding line row", err)
		}
		lines = append(lines, *line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating outstanding line rows", err)
	}
	return lines, nil
}

// IsDebtLineReferenced reports whether any receipt detail references the line.
func (r *PgxDebtRepository) IsDebtLineReferenced(ctx context.Context, debtID string) (bool, error) {
	var referenced bool
	query := `SELECT EXISTS (SELECT 1 FROM receipt_details WHERE debt_id = $1);`
	if err := r.Pool.QueryRow(ctx, query, debtID).Scan(&referenced); err != nil {
		return false, apperrors.NewAppError(500, "failed to check references for debt line "+debtID, err)
	}
	return referenced, nil
}

// UpdateDebtLine updates the editable columns of a line.
func (r *PgxDebtRepository) UpdateDebtLine(ctx context.Context, line domain.DebtLine) error {
	m := mapping.ToModelDebtLine(line)
	query := `
		UPDATE debt_lines
		SET stand_id = $2, concept_id = $3, debt_date = $4, amount = $5, late_fee = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE debt_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.DebtID, m.StandID, m.ConceptID, m.DebtDate, m.Amount, m.LateFee,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update debt line "+m.DebtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetDebtLineSettled sets the settled flag.
func (r *PgxDebtRepository) SetDebtLineSettled(ctx context.Context, debtID string, settled bool, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE debt_lines
		SET settled = $2, last_updated_at = $3, last_updated_by = $4
		WHERE debt_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, debtID, settled, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to set settled flag for debt line "+debtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateDebtLine soft-removes a line.
func (r *PgxDebtRepository) DeactivateDebtLine(ctx context.Context, debtID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE debt_lines
		SET active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE debt_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, debtID, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate debt line "+debtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteDebtLine hard-deletes an unreferenced line.
func (r *PgxDebtRepository) DeleteDebtLine(ctx context.Context, debtID string) error {
	referenced, err := r.IsDebtLineReferenced(ctx, debtID)
	if err != nil {
		return err
	}
	if referenced {
		return fmt.Errorf("%w: debt line %s is referenced by a receipt", apperrors.ErrConflict, debtID)
	}

	tag, err := r.Pool.Exec(ctx, `DELETE FROM debt_lines WHERE debt_id = $1;`, debtID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete debt line "+debtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
