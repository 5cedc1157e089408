package handlers

import (
	"github.com/DanielEsLoH/StockFlow-sub014/cmd/docs"
	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/middleware"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) {
	r.GET("/health", handleHealth)

	registerAuthRoutes(r, cfg, services, loginLimiter)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group. Everything
// below /tenants/:tenant_id is tenant-scoped; the service layer checks the
// caller's membership and role on every operation.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerTenantRoutes(v1, services.Tenant)

	tenantScoped := v1.Group("/tenants/:tenant_id")
	{
		registerCashRegisterRoutes(tenantScoped, services.Register)
		RegisterSessionRoutes(tenantScoped, services.Session, services.Register)
		registerReportRoutes(tenantScoped, services.Report)
		registerSaleRoutes(tenantScoped, services.Sale)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
