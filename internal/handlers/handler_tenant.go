package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/dto"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tenantHandler handles HTTP requests for tenants and memberships.
type tenantHandler struct {
	tenantService portssvc.TenantSvcFacade
}

func newTenantHandler(ts portssvc.TenantSvcFacade) *tenantHandler {
	return &tenantHandler{tenantService: ts}
}

// registerTenantRoutes registers tenant management routes.
func registerTenantRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade) {
	h := newTenantHandler(tenantService)

	tenants := rg.Group("/tenants")
	{
		tenants.POST("", h.createTenant)
		tenants.GET("", h.listUserTenants)
		tenants.POST("/:tenant_id/users", h.addUserToTenant)
	}
}

// createTenant godoc
// @Summary Create a new tenant
// @Description Creates a tenant and assigns the creator as admin.
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body dto.CreateTenantRequest true "Tenant details"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /tenants [post]
func (h *tenantHandler) createTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTenant", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create tenant")
		return
	}

	logger.Info("Tenant created", slog.String("tenant_id", tenant.TenantID))
	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant))
}

// listUserTenants godoc
// @Summary List the caller's tenants
// @Description Returns the tenants the authenticated user belongs to.
// @Tags tenants
// @Produce json
// @Success 200 {object} dto.ListTenantsResponse
// @Security BearerAuth
// @Router /tenants [get]
func (h *tenantHandler) listUserTenants(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tenants, err := h.tenantService.ListUserTenants(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list tenants")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTenantsResponse(tenants))
}

// addUserToTenant godoc
// @Summary Add a user to a tenant
// @Description Adds a member with a role. Restricted to tenant admins.
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param member body dto.AddTenantMemberRequest true "Member details"
// @Success 204 "Member added"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/users [post]
func (h *tenantHandler) addUserToTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var req dto.AddTenantMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddTenantMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.tenantService.AddUserToTenant(c.Request.Context(), userID, req.UserID, tenantID, req.Role); err != nil {
		respondError(c, err, "Failed to add user to tenant")
		return
	}

	logger.Info("User added to tenant", slog.String("tenant_id", tenantID), slog.String("target_user_id", req.UserID))
	c.Status(http.StatusNoContent)
}
