package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/dto"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashRegisterHandler handles HTTP requests for cash registers.
type cashRegisterHandler struct {
	registerService portssvc.RegisterSvcFacade
}

func newCashRegisterHandler(rs portssvc.RegisterSvcFacade) *cashRegisterHandler {
	return &cashRegisterHandler{registerService: rs}
}

// registerCashRegisterRoutes registers the cash register routes under a
// tenant.
func registerCashRegisterRoutes(rg *gin.RouterGroup, registerService portssvc.RegisterSvcFacade) {
	h := newCashRegisterHandler(registerService)

	registers := rg.Group("/cash-registers")
	{
		registers.POST("", h.createRegister)
		registers.GET("", h.listRegisters)
		registers.GET("/:register_id", h.getRegister)
		registers.PUT("/:register_id", h.updateRegister)
	}
}

// createRegister godoc
// @Summary Create a cash register
// @Description Creates a register tied to a warehouse. The code is unique per tenant. Restricted to tenant admins.
// @Tags cash-registers
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param register body dto.CreateRegisterRequest true "Register details"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Code already in use"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/cash-registers [post]
func (h *cashRegisterHandler) createRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var req dto.CreateRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRegister", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	register, err := h.registerService.CreateRegister(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create cash register")
		return
	}

	logger.Info("Cash register created", slog.String("register_id", register.CashRegisterID))
	c.JSON(http.StatusCreated, dto.ToRegisterResponse(register))
}

// listRegisters godoc
// @Summary List cash registers
// @Description Returns all registers of the tenant ordered by code.
// @Tags cash-registers
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.ListRegistersResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/cash-registers [get]
func (h *cashRegisterHandler) listRegisters(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	registers, err := h.registerService.ListRegisters(c.Request.Context(), tenantID, userID)
	if err != nil {
		respondError(c, err, "Failed to list cash registers")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRegistersResponse(registers))
}

// getRegister godoc
// @Summary Get a cash register
// @Description Returns a single register by ID.
// @Tags cash-registers
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param register_id path string true "Register ID"
// @Success 200 {object} dto.RegisterResponse
// @Failure 404 {object} map[string]string "Register not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/cash-registers/{register_id} [get]
func (h *cashRegisterHandler) getRegister(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	registerID := c.Param("register_id")

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	register, err := h.registerService.GetRegister(c.Request.Context(), tenantID, registerID, userID)
	if err != nil {
		respondError(c, err, "Failed to get cash register")
		return
	}

	c.JSON(http.StatusOK, dto.ToRegisterResponse(register))
}

// updateRegister godoc
// @Summary Update a cash register
// @Description Updates name, description or status. Registers are never deleted; set status to CLOSED or SUSPENDED to retire one.
// @Tags cash-registers
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param register_id path string true "Register ID"
// @Param register body dto.UpdateRegisterRequest true "Fields to update"
// @Success 200 {object} dto.RegisterResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Register not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/cash-registers/{register_id} [put]
func (h *cashRegisterHandler) updateRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	registerID := c.Param("register_id")

	var req dto.UpdateRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRegister", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	register, err := h.registerService.UpdateRegister(c.Request.Context(), tenantID, registerID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to update cash register")
		return
	}

	c.JSON(http.StatusOK, dto.ToRegisterResponse(register))
}
