package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/galeria-sm/stands_backend/internal/apperrors"
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portsrepo "github.com/galeria-sm/stands_backend/internal/core/ports/repositories"
	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
	"github.com/galeria-sm/stands_backend/internal/dto"
	"github.com/galeria-sm/stands_backend/internal/middleware"
)

// tenantService implements the Tenant Assignment Registry operations.
type tenantService struct {
	tenantRepo portsrepo.TenantRepositoryFacade
	standRepo  portsrepo.StandRepositoryFacade
}

// NewTenantService creates a new TenantService.
func NewTenantService(tenantRepo portsrepo.TenantRepositoryFacade, standRepo portsrepo.StandRepositoryFacade) portssvc.TenantSvcFacade {
	return &tenantService{
		tenantRepo: tenantRepo,
		standRepo:  standRepo,
	}
}

var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

// CreateTenant creates a tenant. Names are not unique; two tenants may share one.
// Implements portssvc.TenantSvcFacade
func (s *tenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	tenant := domain.Tenant{
		TenantID: uuid.NewString(),
		Name:     req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		logger.Error("Failed to save tenant", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save tenant: %w", err)
	}

	logger.Info("Tenant created", slog.String("tenant_id", tenant.TenantID))
	return &tenant, nil
}

// ListTenants retrieves a paginated tenant listing.
// Implements portssvc.TenantSvcFacade
func (s *tenantService) ListTenants(ctx context.Context, limit, offset int) ([]domain.Tenant, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	tenants, err := s.tenantRepo.ListTenants(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

// GetCurrent returns the stand's current assignment, or nil when unassigned.
// An unassigned stand is a normal state, not an error.
// Implements portssvc.TenantSvcFacade
func (s *tenantService) GetCurrent(ctx context.Context, standID string) (*domain.TenantAssignment, error) {
	current, err := s.tenantRepo.FindCurrentAssignment(ctx, standID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find current assignment for stand %s: %w", standID, err)
	}
	return current, nil
}

// GetHistory returns the stand's tenancy history, newest start date first.
// Implements portssvc.TenantSvcFacade
func (s *tenantService) GetHistory(ctx context.Context, standID string) ([]domain.TenantAssignment, error) {
	history, err := s.tenantRepo.ListAssignmentsByStand(ctx, standID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for stand %s: %w", standID, err)
	}
	return history, nil
}

// Assign makes the tenant the stand's current one. The previous record is
// superseded, never deleted; the flip and insert are one atomic transition in the
// repository.
// Implements portssvc.TenantSvcFacade
func (s *tenantService) Assign(ctx context.Context, req dto.AssignTenantRequest, creatorUserID string) (*domain.TenantAssignment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.standRepo.FindStandByID(ctx, req.StandID); err != nil {
		return nil, fmt.Errorf("failed to fetch stand %s: %w", req.StandID, err)
	}
	tenant, err := s.tenantRepo.FindTenantByID(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tenant %s: %w", req.TenantID, err)
	}

	now := time.Now().UTC()
	assignment := domain.TenantAssignment{
		AssignmentID: uuid.NewString(),
		StandID:      req.StandID,
		TenantID:     req.TenantID,
		TenantName:   tenant.Name,
		StartDate:    req.StartDate,
		Current:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.tenantRepo.AssignTenant(ctx, assignment); err != nil {
		logger.Error("Failed to assign tenant", slog.String("error", err.Error()),
			slog.String("stand_id", req.StandID), slog.String("tenant_id", req.TenantID))
		return nil, fmt.Errorf("failed to assign tenant: %w", err)
	}

	logger.Info("Tenant assigned", slog.String("stand_id", req.StandID), slog.String("tenant_id", req.TenantID))
	return &assignment, nil
}

// Remove clears the stand's current assignment. Removing from an unassigned stand
// is a no-op.
// Implements portssvc.TenantSvcFacade
func (s *tenantService) Remove(ctx context.Context, standID string, updaterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.standRepo.FindStandByID(ctx, standID); err != nil {
		return fmt.Errorf("failed to fetch stand %s: %w", standID, err)
	}

	if err := s.tenantRepo.ClearCurrentAssignment(ctx, standID, updaterUserID, time.Now().UTC()); err != nil {
		logger.Error("Failed to clear assignment", slog.String("error", err.Error()), slog.String("stand_id", standID))
		return fmt.Errorf("failed to clear assignment for stand %s: %w", standID, err)
	}

	logger.Info("Assignment cleared", slog.String("stand_id", standID))
	return nil
}
