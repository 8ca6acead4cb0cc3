package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/galeria-sm/stands_backend/internal/apperrors"
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portsrepo "github.com/galeria-sm/stands_backend/internal/core/ports/repositories"
	"github.com/galeria-sm/stands_backend/internal/models"
	"github.com/galeria-sm/stands_backend/internal/utils/mapping"
)

type PgxTenantRepository struct {
	BaseRepository
}

// newPgxTenantRepository creates a new repository for tenants and their stand
// assignments.
func newPgxTenantRepository(pool *pgxpool.Pool) portsrepo.TenantRepositoryFacade {
	return &PgxTenantRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TenantRepositoryFacade = (*PgxTenantRepository)(nil)

// SaveTenant persists a new tenant.
func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	query := `
		INSERT INTO tenants (tenant_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TenantID, m.Name, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert tenant "+m.TenantID, err)
	}
	return nil
}

// FindTenantByID retrieves a tenant by its ID.
func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	query := `
		SELECT tenant_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM tenants WHERE tenant_id = $1;
	`
	var m models.Tenant
	err := r.Pool.QueryRow(ctx, query, tenantID).Scan(
		&m.TenantID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find tenant by ID "+tenantID, err)
	}
	d := mapping.ToDomainTenant(m)
	return &d, nil
}

// ListTenants retrieves a paginated list of tenants.
func (r *PgxTenantRepository) ListTenants(ctx context.Context, limit int, offset int) ([]domain.Tenant, error) {
	query := `
		SELECT tenant_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM tenants ORDER BY name LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tenants", err)
	}
	defer rows.Close()

	tenants := []domain.Tenant{}
	for rows.Next() {
		var m models.Tenant
		if err := rows.Scan(
			&m.TenantID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tenant row", err)
		}
		tenants = append(tenants, mapping.ToDomainTenant(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating tenant rows", err)
	}
	return tenants, nil
}

const assignmentColumns = `a.assignment_id, a.stand_id, a.tenant_id, a.start_date, a.current,
	       a.created_at, a.created_by, a.last_updated_at, a.last_updated_by, t.name`

func scanAssignment(row pgx.Row) (*models.TenantAssignment, string, error) {
	var m models.TenantAssignment
	var tenantName string
	err := row.Scan(
		&m.AssignmentID, &m.StandID, &m.TenantID, &m.StartDate, &m.Current,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &tenantName,
	)
	if err != nil {
		return nil, "", err
	}
	return &m, tenantName, nil
}

// FindCurrentAssignment returns the stand's current assignment, or ErrNotFound
// when the stand is unassigned.
func (r *PgxTenantRepository) FindCurrentAssignment(ctx context.Context, standID string) (*domain.TenantAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM tenant_assignments a
		JOIN tenants t ON t.tenant_id = a.tenant_id
		WHERE a.stand_id = $1 AND a.current;
	`
	m, tenantName, err := scanAssignment(r.Pool.QueryRow(ctx, query, standID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find current assignment for stand "+standID, err)
	}
	d := mapping.ToDomainAssignment(*m, tenantName)
	return &d, nil
}

// ListAssignmentsByStand returns the full tenancy history of a stand, newest start
// date first.
func (r *PgxTenantRepository) ListAssignmentsByStand(ctx context.Context, standID string) ([]domain.TenantAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM tenant_assignments a
		JOIN tenants t ON t.tenant_id = a.tenant_id
		WHERE a.stand_id = $1
		ORDER BY a.start_date DESC, a.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, standID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query assignments for stand "+standID, err)
	}
	defer rows.Close()

	history := []domain.TenantAssignment{}
	for rows.Next() {
		m, tenantName, err := scanAssignment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan assignment row for stand "+standID, err)
		}
		history = append(history, mapping.ToDomainAssignment(*m, tenantName))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating assignment rows for stand "+standID, err)
	}
	return history, nil
}

// AssignTenant supersedes the stand's current record and inserts the new one as
// current, in one transaction. A partial unique index on (stand_id) WHERE current
// backs the flip, so two concurrent assigns cannot both end up current.
func (r *PgxTenantRepository) AssignTenant(ctx context.Context, assignment domain.TenantAssignment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelAssignment(assignment)

	flipQuery := `
		UPDATE tenant_assignments
		SET current = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE stand_id = $1 AND current;
	`
	if _, err := tx.Exec(ctx, flipQuery, m.StandID, m.LastUpdatedAt, m.LastUpdatedBy); err != nil {
		return apperrors.NewAppError(500, "failed to supersede current assignment for stand "+m.StandID, err)
	}

	insertQuery := `
		INSERT INTO tenant_assignments (assignment_id, stand_id, tenant_id, start_date, current, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.AssignmentID, m.StandID, m.TenantID, m.StartDate, m.Current,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on the partial index
			return apperrors.NewAppError(409, "stand "+m.StandID+" was reassigned concurrently", apperrors.ErrConflict)
		}
		return apperrors.NewAppError(500, "failed to insert assignment "+m.AssignmentID, err)
	}

	return r.Commit(ctx, tx)
}

// ClearCurrentAssignment sets the stand's current record to current=false. It is a
// no-op when no current record exists.
func (r *PgxTenantRepository) ClearCurrentAssignment(ctx context.Context, standID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE tenant_assignments
		SET current = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE stand_id = $1 AND current;
	`
	if _, err := r.Pool.Exec(ctx, query, standID, updatedAt, updatedBy); err != nil {
		return apperrors.NewAppError(500, "failed to clear current assignment for stand "+standID, err)
	}
	return nil
}
