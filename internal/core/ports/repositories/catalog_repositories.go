package repositories

import (
	"context"
	"time"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
)

// ConceptRepositoryFacade persists debt concepts.
type ConceptRepositoryFacade interface {
	SaveConcept(ctx context.Context, concept domain.DebtConcept) error
	FindConceptByID(ctx context.Context, conceptID string) (*domain.DebtConcept, error)
	ListConcepts(ctx context.Context, activeOnly bool) ([]domain.DebtConcept, error)
	UpdateConcept(ctx context.Context, concept domain.DebtConcept) error
	DeactivateConcept(ctx context.Context, conceptID string, updatedBy string, updatedAt time.Time) error
	// DeleteConcept hard-deletes a concept; returns ErrConflict once any debt line or
	// receipt detail references it.
	DeleteConcept(ctx context.Context, conceptID string) error
}

// StandRepositoryFacade persists stands.
type StandRepositoryFacade interface {
	SaveStand(ctx context.Context, stand domain.Stand) error
	FindStandByID(ctx context.Context, standID string) (*domain.Stand, error)
	ListStands(ctx context.Context, level *int, activeOnly bool) ([]domain.Stand, error)
	UpdateStand(ctx context.Context, stand domain.Stand) error
	DeactivateStand(ctx context.Context, standID string, updatedBy string, updatedAt time.Time) error
	// DeleteStand hard-deletes a stand; returns ErrConflict when debts, receipts or
	// assignment history reference it.
	DeleteStand(ctx context.Context, standID string) error
}

// ClientRepositoryFacade persists stand owners.
type ClientRepositoryFacade interface {
	SaveClient(ctx context.Context, client domain.Client) error
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client domain.Client) error
}

// CatalogRepositoryFacade persists the small reference catalogs used by receipts.
type CatalogRepositoryFacade interface {
	SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error
	FindPaymentMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context, activeOnly bool) ([]domain.PaymentMethod, error)

	SaveCollectingEntity(ctx context.Context, entity domain.CollectingEntity) error
	FindCollectingEntityByID(ctx context.Context, entityID string) (*domain.CollectingEntity, error)
	ListCollectingEntities(ctx context.Context, activeOnly bool) ([]domain.CollectingEntity, error)
}
