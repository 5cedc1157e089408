package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/dto"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sessionHandler handles HTTP requests for the POS session lifecycle.
type sessionHandler struct {
	sessionService  portssvc.SessionSvcFacade
	registerService portssvc.RegisterSvcFacade
}

func newSessionHandler(ss portssvc.SessionSvcFacade, rs portssvc.RegisterSvcFacade) *sessionHandler {
	return &sessionHandler{
		sessionService:  ss,
		registerService: rs,
	}
}

// RegisterSessionRoutes registers the POS session routes under a tenant.
func RegisterSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvcFacade, registerService portssvc.RegisterSvcFacade) {
	h := newSessionHandler(sessionService, registerService)

	sessions := rg.Group("/pos-sessions")
	{
		sessions.POST("", h.openSession)
		sessions.GET("", h.listSessions)
		sessions.GET("/current", h.getCurrentSession)
		sessions.GET("/:session_id", h.getSession)
		sessions.POST("/:session_id/close", h.closeSession)
		sessions.POST("/:session_id/movements", h.registerCashMovement)
		sessions.GET("/:session_id/movements", h.listCashMovements)
	}
}

// openSession godoc
// @Summary Open a POS session
// @Description Opens a new session on a cash register with a counted opening float. A register can hold at most one open session.
// @Tags pos-sessions
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param session body dto.OpenSessionRequest true "Session details"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Register not found"
// @Failure 409 {object} map[string]string "Register already has an open session"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/pos-sessions [post]
func (h *sessionHandler) openSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var req dto.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenSession", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	session, err := h.sessionService.OpenSession(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to open session")
		return
	}

	resp := dto.ToSessionResponse(session)
	if register, regErr := h.registerService.GetRegister(c.Request.Context(), tenantID, session.CashRegisterID, userID); regErr == nil {
		r := dto.ToRegisterResponse(register)
		resp.CashRegister = &r
	}

	logger.Info("Session opened", slog.String("session_id", session.SessionID), slog.String("tenant_id", tenantID))
	c.JSON(http.StatusCreated, resp)
}

// getCurrentSession godoc
// @Summary Get the caller's current open session
// @Description Returns the authenticated user's open session, or 404 when they have none.
// @Tags pos-sessions
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} map[string]string "No open session"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/pos-sessions/current [get]
func (h *sessionHandler) getCurrentSession(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	session, err := h.sessionService.GetCurrentSession(c.Request.Context(), tenantID, userID)
	if err != nil {
		respondError(c, err, "Failed to get current session")
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no open session for user"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// getSession godoc
// @Summary Get a POS session
// @Description Returns a single session by ID.
// @Tags pos-sessions
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/pos-sessions/{session_id} [get]
func (h *sessionHandler) getSession(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	sessionID := c.Param("session_id")

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	session, err := h.sessionService.GetSession(c.Request.Context(), tenantID, sessionID, userID)
	if err != nil {
		respondError(c, err, "Failed to get session")
		return
	}

	resp := dto.ToSessionResponse(session)
	if register, regErr := h.registerService.GetRegister(c.Request.Context(), tenantID, session.CashRegisterID, userID); regErr == nil {
		r := dto.ToRegisterResponse(register)
		resp.CashRegister = &r
	}
	c.JSON(http.StatusOK, resp)
}

// listSessions godoc
// @Summary List POS sessions
// @Description Returns a filtered, cursor-paginated page of sessions, newest first. Restricted to managers and admins.
// @Tags pos-sessions
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Cursor from the previous page"
// @Param cashRegisterID query string false "Filter by register"
// @Param status query string false "Filter by status (OPEN or CLOSED)"
// @Param openedByUserID query string false "Filter by opening user"
// @Param from query string false "Opened-at lower bound (RFC3339)"
// @Param to query string false "Opened-at upper bound (RFC3339)"
// @Success 200 {object} dto.ListSessionsResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/pos-sessions [get]
func (h *sessionHandler) listSessions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var params dto.ListSessionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListSessions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sessions, nextToken, err := h.sessionService.ListSessions(c.Request.Context(), tenantID, params, userID)
	if err != nil {
		respondError(c, err, "Failed to list sessions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSessionsResponse(sessions, nextToken))
}

// closeSession godoc
// @Summary Close a POS session
// @Description Closes the session with the physically counted amount. Expected cash and the variance are computed and persisted with the close. Closing is terminal.
// @Tags pos-sessions
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param session_id path string true "Session ID"
// @Param close body dto.CloseSessionRequest true "Counted closing amount"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not the opener and not a manager"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Session already closed"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/pos-sessions/{session_id}/close [post]
func (h *sessionHandler) closeSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	sessionID := c.Param("session_id")

	var req dto.CloseSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CloseSession", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	session, err := h.sessionService.CloseSession(c.Request.Context(), tenantID, sessionID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to close session")
		return
	}

	logger.Info("Session closed", slog.String("session_id", sessionID), slog.String("tenant_id", tenantID))
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// registerCashMovement godoc
// @Summary Record a cash movement
// @Description Appends a CASH_IN or CASH_OUT entry to an open session's ledger. Entries are immutable.
// @Tags pos-sessions
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param session_id path string true "Session ID"
// @Param movement body dto.CashMovementRequest true "Movement details"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Session is not open"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/pos-sessions/{session_id}/movements [post]
func (h *sessionHandler) registerCashMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	sessionID := c.Param("session_id")

	var req dto.CashMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CashMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	movement, err := h.sessionService.RegisterCashMovement(c.Request.Context(), tenantID, sessionID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to register cash movement")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// listCashMovements godoc
// @Summary List a session's cash movements
// @Description Returns all ledger entries of a session in insertion order.
// @Tags pos-sessions
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param session_id path string true "Session ID"
// @Success 200 {array} dto.MovementResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/pos-sessions/{session_id}/movements [get]
func (h *sessionHandler) listCashMovements(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	sessionID := c.Param("session_id")

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	movements, err := h.sessionService.ListCashMovements(c.Request.Context(), tenantID, sessionID, userID)
	if err != nil {
		respondError(c, err, "Failed to list cash movements")
		return
	}

	out := make([]dto.MovementResponse, len(movements))
	for i := range movements {
		out[i] = dto.ToMovementResponse(&movements[i])
	}
	c.JSON(http.StatusOK, out)
}
