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

type clientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// CreateClient registers a stand owner.
// Implements portssvc.ClientSvcFacade
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	now := time.Now().UTC()
	client := domain.Client{
		ClientID: uuid.NewString(),
		Name:     req.Name,
		Document: req.Document,
		Active:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to save client: %w", err)
	}
	return &client, nil
}

// GetClientByID retrieves one client.
// Implements portssvc.ClientSvcFacade
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	return client, nil
}

// ListClients retrieves a paginated client listing.
// Implements portssvc.ClientSvcFacade
func (s *clientService) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	clients, err := s.clientRepo.ListClients(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// UpdateClient edits a client.
// Implements portssvc.ClientSvcFacade
func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterUserID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Document != nil {
		client.Document = *req.Document
	}
	client.LastUpdatedAt = time.Now().UTC()
	client.LastUpdatedBy = updaterUserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		return nil, fmt.Errorf("failed to update client %s: %w", clientID, err)
	}
	return client, nil
}
