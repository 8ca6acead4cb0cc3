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

type standService struct {
	standRepo  portsrepo.StandRepositoryFacade
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewStandService creates a new StandService.
func NewStandService(standRepo portsrepo.StandRepositoryFacade, clientRepo portsrepo.ClientRepositoryFacade) portssvc.StandSvcFacade {
	return &standService{standRepo: standRepo, clientRepo: clientRepo}
}

var _ portssvc.StandSvcFacade = (*standService)(nil)

// CreateStand creates a stand, optionally owned by a client.
// Implements portssvc.StandSvcFacade
func (s *standService) CreateStand(ctx context.Context, req dto.CreateStandRequest, creatorUserID string) (*domain.Stand, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.ClientID != nil {
		if _, err := s.clientRepo.FindClientByID(ctx, *req.ClientID); err != nil {
			return nil, fmt.Errorf("failed to fetch client %s: %w", *req.ClientID, err)
		}
	}

	now := time.Now().UTC()
	stand := domain.Stand{
		StandID:     uuid.NewString(),
		Description: req.Description,
		Level:       req.Level,
		ClientID:    req.ClientID,
		Active:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.standRepo.SaveStand(ctx, stand); err != nil {
		logger.Error("Failed to save stand", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save stand: %w", err)
	}
	logger.Info("Stand created", slog.String("stand_id", stand.StandID))
	return &stand, nil
}

// GetStandByID retrieves one stand.
// Implements portssvc.StandSvcFacade
func (s *standService) GetStandByID(ctx context.Context, standID string) (*domain.Stand, error) {
	stand, err := s.standRepo.FindStandByID(ctx, standID)
	if err != nil {
		return nil, fmt.Errorf("failed to find stand %s: %w", standID, err)
	}
	return stand, nil
}

// ListStands lists stands, optionally filtered by level.
// Implements portssvc.StandSvcFacade
func (s *standService) ListStands(ctx context.Context, level *int, activeOnly bool) ([]domain.Stand, error) {
	stands, err := s.standRepo.ListStands(ctx, level, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list stands: %w", err)
	}
	return stands, nil
}

// UpdateStand edits a stand.
// Implements portssvc.StandSvcFacade
func (s *standService) UpdateStand(ctx context.Context, standID string, req dto.UpdateStandRequest, updaterUserID string) (*domain.Stand, error) {
	stand, err := s.standRepo.FindStandByID(ctx, standID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		stand.Description = *req.Description
	}
	if req.Level != nil {
		stand.Level = *req.Level
	}
	if req.ClientID != nil {
		if _, err := s.clientRepo.FindClientByID(ctx, *req.ClientID); err != nil {
			return nil, fmt.Errorf("failed to fetch client %s: %w", *req.ClientID, err)
		}
		stand.ClientID = req.ClientID
	}
	stand.LastUpdatedAt = time.Now().UTC()
	stand.LastUpdatedBy = updaterUserID

	if err := s.standRepo.UpdateStand(ctx, *stand); err != nil {
		return nil, fmt.Errorf("failed to update stand %s: %w", standID, err)
	}
	return stand, nil
}

// DeactivateStand soft-removes a stand.
// Implements portssvc.StandSvcFacade
func (s *standService) DeactivateStand(ctx context.Context, standID string, updaterUserID string) error {
	if _, err := s.standRepo.FindStandByID(ctx, standID); err != nil {
		return err
	}
	if err := s.standRepo.DeactivateStand(ctx, standID, updaterUserID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to deactivate stand %s: %w", standID, err)
	}
	return nil
}

// DeleteStand hard-deletes an unreferenced stand. Stands with ledger, receipt or
// tenancy history return ErrConflict from the repository.
// Implements portssvc.StandSvcFacade
func (s *standService) DeleteStand(ctx context.Context, standID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.standRepo.DeleteStand(ctx, standID); err != nil {
		return fmt.Errorf("failed to delete stand %s: %w", standID, err)
	}
	logger.Info("Stand deleted", slog.String("stand_id", standID))
	return nil
}
