package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/galeria-sm/stands_backend/internal/apperrors"
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portsrepo "github.com/galeria-sm/stands_backend/internal/core/ports/repositories"
	"github.com/galeria-sm/stands_backend/internal/models"
	"github.com/galeria-sm/stands_backend/internal/utils/mapping"
)

type PgxCatalogRepository struct {
	BaseRepository
}

// newPgxCatalogRepository creates a new repository for the payment method and
// collecting entity catalogs.
func newPgxCatalogRepository(pool *pgxpool.Pool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

// SavePaymentMethod persists a new payment method.
func (r *PgxCatalogRepository) SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	m := mapping.ToModelPaymentMethod(method)
	query := `
		INSERT INTO payment_methods (payment_method_id, name, active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentMethodID, m.Name, m.Active,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payment method "+m.PaymentMethodID, err)
	}
	return nil
}

// FindPaymentMethodByID retrieves a payment method by its ID.
func (r *PgxCatalogRepository) FindPaymentMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	query := `
		SELECT payment_method_id, name, active, created_at, created_by, last_updated_at, last_updated_by
		FROM payment_methods WHERE payment_method_id = $1;
	`
	var m models.PaymentMethod
	err := r.Pool.QueryRow(ctx, query, methodID).Scan(
		&m.PaymentMethodID, &m.Name, &m.Active,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment method by ID "+methodID, err)
	}
	d := mapping.ToDomainPaymentMethod(m)
	return &d, nil
}

// ListPaymentMethods retrieves the payment method catalog.
func (r *PgxCatalogRepository) ListPaymentMethods(ctx context.Context, activeOnly bool) ([]domain.PaymentMethod, error) {
	query := `
		SELECT payment_method_id, name, active, created_at, created_by, last_updated_at, last_updated_by
		FROM payment_methods
	`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payment methods", err)
	}
	defer rows.Close()

	methods := []domain.PaymentMethod{}
	for rows.Next() {
		var m models.PaymentMethod
		if err := rows.Scan(
			&m.PaymentMethodID, &m.Name, &m.Active,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment method row", err)
		}
		methods = append(methods, mapping.ToDomainPaymentMethod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment method rows", err)
	}
	return methods, nil
}

// SaveCollectingEntity persists a new collecting entity.
func (r *PgxCatalogRepository) SaveCollectingEntity(ctx context.Context, entity domain.CollectingEntity) error {
	m := mapping.ToModelCollectingEntity(entity)
	query := `
		INSERT INTO collecting_entities (entity_id, name, active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntityID, m.Name, m.Active,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert collecting entity "+m.EntityID, err)
	}
	return nil
}

// FindCollectingEntityByID retrieves a collecting entity by its ID.
func (r *PgxCatalogRepository) FindCollectingEntityByID(ctx context.Context, entityID string) (*domain.CollectingEntity, error) {
	query := `
		SELECT entity_id, name, active, created_at, created_by, last_updated_at, last_updated_by
		FROM collecting_entities WHERE entity_id = $1;
	`
	var m models.CollectingEntity
	err := r.Pool.QueryRow(ctx, query, entityID).Scan(
		&m.EntityID, &m.Name, &m.Active,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find collecting entity by ID "+entityID, err)
	}
	d := mapping.ToDomainCollectingEntity(m)
	return &d, nil
}

// ListCollectingEntities retrieves the collecting entity catalog.
func (r *PgxCatalogRepository) ListCollectingEntities(ctx context.Context, activeOnly bool) ([]domain.CollectingEntity, error) {
	query := `
		SELECT entity_id, name, active, created_at, created_by, last_updated_at, last_updated_by
		FROM collecting_entities
	`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query collecting entities", err)
	}
	defer rows.Close()

	entities := []domain.CollectingEntity{}
	for rows.Next() {
		var m models.CollectingEntity
		if err := rows.Scan(
			&m.EntityID, &m.Name, &m.Active,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan collecting entity row", err)
		}
		entities = append(entities, mapping.ToDomainCollectingEntity(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating collecting entity rows", err)
	}
	return entities, nil
}
