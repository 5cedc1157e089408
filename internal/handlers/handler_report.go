package handlers

import (
	"net/http"

	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportHandler handles HTTP requests for X and Z session reports.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

// registerReportRoutes registers the report routes under a tenant.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := rg.Group("/pos-sessions/:session_id/reports")
	{
		reports.GET("/x", h.generateXReport)
		reports.GET("/z", h.generateZReport)
	}
}

// generateXReport godoc
// @Summary Generate an X report
// @Description Mid-shift snapshot of a session's sales and cash movements. Works on open and closed sessions and never mutates anything.
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionReportResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/pos-sessions/{session_id}/reports/x [get]
func (h *reportHandler) generateXReport(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	sessionID := c.Param("session_id")

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	report, err := h.reportService.GenerateXReport(c.Request.Context(), tenantID, sessionID, userID)
	if err != nil {
		respondError(c, err, "Failed to generate X report")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionReportResponse(report))
}

// generateZReport godoc
// @Summary Generate a Z report
// @Description Definitive end-of-shift record including the closing count and variance. Requires a closed session; restricted to managers and admins.
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionReportResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Session is still open"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/pos-sessions/{session_id}/reports/z [get]
func (h *reportHandler) generateZReport(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	sessionID := c.Param("session_id")

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	report, err := h.reportService.GenerateZReport(c.Request.Context(), tenantID, sessionID, userID)
	if err != nil {
		respondError(c, err, "Failed to generate Z report")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionReportResponse(report))
}
