package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portsrepo "github.com/galeria-sm/stands_backend/internal/core/ports/repositories"
	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
	"github.com/galeria-sm/stands_backend/internal/dto"
)

type catalogService struct {
	catalogRepo portsrepo.CatalogRepositoryFacade
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(catalogRepo portsrepo.CatalogRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{catalogRepo: catalogRepo}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

// CreatePaymentMethod adds a payment method catalog entry.
// Implements portssvc.CatalogSvcFacade
func (s *catalogService) CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest, creatorUserID string) (*domain.PaymentMethod, error) {
	now := time.Now().UTC()
	method := domain.PaymentMethod{
		PaymentMethodID: uuid.NewString(),
		Name:            req.Name,
		Active:          true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.catalogRepo.SavePaymentMethod(ctx, method); err != nil {
		return nil, fmt.Errorf("failed to save payment method: %w", err)
	}
	return &method, nil
}

// ListPaymentMethods lists the payment method catalog.
// Implements portssvc.CatalogSvcFacade
func (s *catalogService) ListPaymentMethods(ctx context.Context, activeOnly bool) ([]domain.PaymentMethod, error) {
	methods, err := s.catalogRepo.ListPaymentMethods(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return methods, nil
}

// CreateCollectingEntity adds a collecting entity catalog entry.
// Implements portssvc.CatalogSvcFacade
func (s *catalogService) CreateCollectingEntity(ctx context.Context, req dto.CreateCollectingEntityRequest, creatorUserID string) (*domain.CollectingEntity, error) {
	now := time.Now().UTC()
	entity := domain.CollectingEntity{
		EntityID: uuid.NewString(),
		Name:     req.Name,
		Active:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.catalogRepo.SaveCollectingEntity(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to save collecting entity: %w", err)
	}
	return &entity, nil
}

// ListCollectingEntities lists the collecting entity catalog.
// Implements portssvc.CatalogSvcFacade
func (s *catalogService) ListCollectingEntities(ctx context.Context, activeOnly bool) ([]domain.CollectingEntity, error) {
	entities, err := s.catalogRepo.ListCollectingEntities(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list collecting entities: %w", err)
	}
	return entities, nil
}
