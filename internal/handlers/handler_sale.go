package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/dto"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/middleware"
	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests for sale attribution.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

// registerSaleRoutes registers the sale attribution route under a tenant.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	rg.POST("/pos-sessions/:session_id/sales", h.recordSale)
}

// recordSale godoc
// @Summary Record a sale against a session
// @Description Attributes a completed sale to an open session for drawer accounting. A sale racing a concurrent close is rejected with 409.
// @Tags sales
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param session_id path string true "Session ID"
// @Param sale body dto.RecordSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Session is not open"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/pos-sessions/{session_id}/sales [post]
func (h *saleHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	sessionID := c.Param("session_id")

	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sale, err := h.saleService.RecordSale(c.Request.Context(), tenantID, sessionID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to record sale")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}
