package services

// ServiceContainer aggregates all service facades for dependency injection
// into the handler layer.
type ServiceContainer struct {
	User        UserSvcFacade
	Tenant      TenantSvcFacade
	Register    RegisterSvcFacade
	Session     SessionSvcFacade
	Report      ReportSvcFacade
	Sale        SaleSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
