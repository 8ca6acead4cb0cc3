package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ConceptRepo   ConceptRepositoryFacade
	StandRepo     StandRepositoryFacade
	ClientRepo    ClientRepositoryFacade
	TenantRepo    TenantRepositoryFacade
	DebtRepo      DebtRepositoryFacade
	ReceiptRepo   ReceiptRepositoryFacade
	NumberingRepo NumberingRepositoryFacade
	CatalogRepo   CatalogRepositoryFacade
	UserRepo      UserRepositoryFacade
	ReportingRepo ReportingRepository
}
