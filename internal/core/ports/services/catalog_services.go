package services

import (
	"context"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
	"github.com/galeria-sm/stands_backend/internal/dto"
)

// ConceptSvcFacade manages debt concepts.
type ConceptSvcFacade interface {
	CreateConcept(ctx context.Context, req dto.CreateConceptRequest, creatorUserID string) (*domain.DebtConcept, error)
	GetConceptByID(ctx context.Context, conceptID string) (*domain.DebtConcept, error)
	ListConcepts(ctx context.Context, activeOnly bool) ([]domain.DebtConcept, error)
	UpdateConcept(ctx context.Context, conceptID string, req dto.UpdateConceptRequest, updaterUserID string) (*domain.DebtConcept, error)
	DeactivateConcept(ctx context.Context, conceptID string, updaterUserID string) error
	// DeleteConcept hard-deletes; referenced concepts return ErrConflict.
	DeleteConcept(ctx context.Context, conceptID string) error
}

// StandSvcFacade manages stands.
type StandSvcFacade interface {
	CreateStand(ctx context.Context, req dto.CreateStandRequest, creatorUserID string) (*domain.Stand, error)
	GetStandByID(ctx context.Context, standID string) (*domain.Stand, error)
	ListStands(ctx context.Context, level *int, activeOnly bool) ([]domain.Stand, error)
	UpdateStand(ctx context.Context, standID string, req dto.UpdateStandRequest, updaterUserID string) (*domain.Stand, error)
	DeactivateStand(ctx context.Context, standID string, updaterUserID string) error
	// DeleteStand hard-deletes; stands referenced by debts, receipts or assignment
	// history return ErrConflict.
	DeleteStand(ctx context.Context, standID string) error
}

// ClientSvcFacade manages stand owners.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error)
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterUserID string) (*domain.Client, error)
}

// CatalogSvcFacade manages the payment method and collecting entity catalogs.
type CatalogSvcFacade interface {
	CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest, creatorUserID string) (*domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context, activeOnly bool) ([]domain.PaymentMethod, error)

	CreateCollectingEntity(ctx context.Context, req dto.CreateCollectingEntityRequest, creatorUserID string) (*domain.CollectingEntity, error)
	ListCollectingEntities(ctx context.Context, activeOnly bool) ([]domain.CollectingEntity, error)
}
