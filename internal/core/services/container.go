package services

import (
	portsrepo "github.com/galeria-sm/stands_backend/internal/core/ports/repositories"
	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
	"github.com/galeria-sm/stands_backend/internal/platform/config"
)

// NewServiceContainer wires every service with its repositories. Handlers depend
// on the container, never on concrete services.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.AppConfig) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.UserRepo)
	return &portssvc.ServiceContainer{
		Concept:   NewConceptService(repos.ConceptRepo),
		Stand:     NewStandService(repos.StandRepo, repos.ClientRepo),
		Client:    NewClientService(repos.ClientRepo),
		Tenant:    NewTenantService(repos.TenantRepo, repos.StandRepo),
		Debt:      NewDebtService(repos.DebtRepo, repos.ConceptRepo, repos.StandRepo, repos.TenantRepo),
		Receipt:   NewReceiptService(repos.ReceiptRepo, repos.NumberingRepo, repos.DebtRepo, repos.ConceptRepo, repos.StandRepo, repos.CatalogRepo),
		Catalog:   NewCatalogService(repos.CatalogRepo),
		User:      userSvc,
		Token:     NewTokenService(userSvc, cfg),
		Reporting: NewReportingService(repos.ReportingRepo),
	}
}
