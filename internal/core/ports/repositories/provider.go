package repositories

// RepositoryProvider aggregates all repository facades for dependency
// injection into the service layer.
type RepositoryProvider struct {
	UserRepo     UserRepositoryFacade
	TenantRepo   TenantRepositoryFacade
	RegisterRepo RegisterRepositoryFacade
	SessionRepo  SessionRepositoryFacade
	MovementRepo MovementRepositoryFacade
	SaleRepo     SaleRepositoryFacade
	AuditLogRepo AuditLogRepositoryFacade
}
