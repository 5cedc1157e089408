package services

import (
	portsrepo "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/repositories"
	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/platform/config"
)

// NewServiceContainer wires the repositories into the service facades.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config) portssvc.ServiceContainer {
	userSvc := NewUserService(repos.UserRepo)
	tenantSvc := NewTenantService(repos.TenantRepo)
	registerSvc := NewRegisterService(repos.RegisterRepo, repos.AuditLogRepo, tenantSvc)
	sessionSvc := NewSessionService(repos.SessionRepo, repos.MovementRepo, repos.SaleRepo, repos.RegisterRepo, repos.AuditLogRepo, tenantSvc)
	reportSvc := NewReportService(repos.SessionRepo, repos.MovementRepo, repos.SaleRepo, tenantSvc)
	saleSvc := NewSaleService(repos.SaleRepo, repos.AuditLogRepo, tenantSvc)
	tokenSvc := NewTokenService(cfg, userSvc)
	googleOAuthSvc := NewGoogleOAuthService(cfg)

	return portssvc.ServiceContainer{
		User:        userSvc,
		Tenant:      tenantSvc,
		Register:    registerSvc,
		Session:     sessionSvc,
		Report:      reportSvc,
		Sale:        saleSvc,
		Token:       tokenSvc,
		GoogleOAuth: googleOAuthSvc,
	}
}
