package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/galeria-sm/stands_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	conceptRepo := newPgxConceptRepository(dbPool)
	standRepo := newPgxStandRepository(dbPool)
	clientRepo := newPgxClientRepository(dbPool)
	tenantRepo := newPgxTenantRepository(dbPool)
	debtRepo := newPgxDebtRepository(dbPool)
	receiptRepo := newPgxReceiptRepository(dbPool)
	numberingRepo := newPgxNumberingRepository(dbPool)
	catalogRepo := newPgxCatalogRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ConceptRepo:   conceptRepo,
		StandRepo:     standRepo,
		ClientRepo:    clientRepo,
		TenantRepo:    tenantRepo,
		DebtRepo:      debtRepo,
		ReceiptRepo:   receiptRepo,
		NumberingRepo: numberingRepo,
		CatalogRepo:   catalogRepo,
		UserRepo:      userRepo,
		ReportingRepo: reportingRepo,
	}
}
