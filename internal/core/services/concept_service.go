package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portsrepo "github.com/galeria-sm/stands_backend/internal/core/ports/repositories"
	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
	"github.com/galeria-sm/stands_backend/internal/dto"
	"github.com/galeria-sm/stands_backend/internal/middleware"
)

type conceptService struct {
	conceptRepo portsrepo.ConceptRepositoryFacade
}

// NewConceptService creates a new ConceptService.
func NewConceptService(conceptRepo portsrepo.ConceptRepositoryFacade) portssvc.ConceptSvcFacade {
	return &conceptService{conceptRepo: conceptRepo}
}

var _ portssvc.ConceptSvcFacade = (*conceptService)(nil)

// CreateConcept creates a debt concept.
// Implements portssvc.ConceptSvcFacade
func (s *conceptService) CreateConcept(ctx context.Context, req dto.CreateConceptRequest, creatorUserID string) (*domain.DebtConcept, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	concept := domain.DebtConcept{
		ConceptID:   uuid.NewString(),
		Description: req.Description,
		IsDebt:      req.IsDebt,
		TenantPays:  req.TenantPays,
		Active:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.conceptRepo.SaveConcept(ctx, concept); err != nil {
		logger.Error("Failed to save concept", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save concept: %w", err)
	}
	logger.Info("Concept created", slog.String("concept_id", concept.ConceptID))
	return &concept, nil
}

// GetConceptByID retrieves one concept.
// Implements portssvc.ConceptSvcFacade
func (s *conceptService) GetConceptByID(ctx context.Context, conceptID string) (*domain.DebtConcept, error) {
	concept, err := s.conceptRepo.FindConceptByID(ctx, conceptID)
	if err != nil {
		return nil, fmt.Errorf("failed to find concept %s: %w", conceptID, err)
	}
	return concept, nil
}

// ListConcepts lists concepts, optionally active ones only.
// Implements portssvc.ConceptSvcFacade
func (s *conceptService) ListConcepts(ctx context.Context, activeOnly bool) ([]domain.DebtConcept, error) {
	concepts, err := s.conceptRepo.ListConcepts(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list concepts: %w", err)
	}
	return concepts, nil
}

// UpdateConcept edits a concept. Changing isDebt or tenantPays affects future debt
// lines only; existing lines keep their snapshots.
// Implements portssvc.ConceptSvcFacade
func (s *conceptService) UpdateConcept(ctx context.Context, conceptID string, req dto.UpdateConceptRequest, updaterUserID string) (*domain.DebtConcept, error) {
	concept, err := s.conceptRepo.FindConceptByID(ctx, conceptID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		concept.Description = *req.Description
	}
	if req.IsDebt != nil {
		concept.IsDebt = *req.IsDebt
	}
	if req.TenantPays != nil {
		concept.TenantPays = *req.TenantPays
	}
	concept.LastUpdatedAt = time.Now().UTC()
	concept.LastUpdatedBy = updaterUserID

	if err := s.conceptRepo.UpdateConcept(ctx, *concept); err != nil {
		return nil, fmt.Errorf("failed to update concept %s: %w", conceptID, err)
	}
	return concept, nil
}

// DeactivateConcept soft-removes a concept from future use.
// Implements portssvc.ConceptSvcFacade
func (s *conceptService) DeactivateConcept(ctx context.Context, conceptID string, updaterUserID string) error {
	if _, err := s.conceptRepo.FindConceptByID(ctx, conceptID); err != nil {
		return err
	}
	if err := s.conceptRepo.DeactivateConcept(ctx, conceptID, updaterUserID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to deactivate concept %s: %w", conceptID, err)
	}
	return nil
}

// DeleteConcept hard-deletes an unreferenced concept. Referenced concepts return
// ErrConflict from the repository.
// Implements portssvc.ConceptSvcFacade
func (s *conceptService) DeleteConcept(ctx context.Context, conceptID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.conceptRepo.DeleteConcept(ctx, conceptID); err != nil {
		return fmt.Errorf("failed to delete concept %s: %w", conceptID, err)
	}
	logger.Info("Concept deleted", slog.String("concept_id", conceptID))
	return nil
}
