package services

import (
	"context"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/dto"
)

// SessionSvcFacade governs the POS session lifecycle: open, cash movements,
// close, and lookups.
type SessionSvcFacade interface {
	// OpenSession creates a new OPEN session on a register. Fails with
	// ErrNotFound (unknown register), ErrInvalidState (register not
	// accepting sessions), ErrConflict (register already has an open
	// session) or ErrValidation (negative opening amount).
	OpenSession(ctx context.Context, tenantID string, req dto.OpenSessionRequest, userID string) (*domain.POSSession, error)

	// RegisterCashMovement appends a CASH_IN/CASH_OUT entry to an open
	// session's ledger.
	RegisterCashMovement(ctx context.Context, tenantID, sessionID string, req dto.CashMovementRequest, userID string) (*domain.CashMovement, error)

	// ListCashMovements returns a session's ledger entries in insertion
	// order.
	ListCashMovements(ctx context.Context, tenantID, sessionID string, userID string) ([]domain.CashMovement, error)

	// CloseSession transitions the session to CLOSED with the physically
	// counted amount, computing expected cash and the variance. Only the
	// opening user or a manager/admin may close a session.
	CloseSession(ctx context.Context, tenantID, sessionID string, req dto.CloseSessionRequest, userID string) (*domain.POSSession, error)

	// GetCurrentSession returns the caller's open session, or nil if none.
	GetCurrentSession(ctx context.Context, tenantID, userID string) (*domain.POSSession, error)

	// GetSession returns a single session by ID.
	GetSession(ctx context.Context, tenantID, sessionID string, userID string) (*domain.POSSession, error)

	// ListSessions returns a filtered, cursor-paginated page of sessions.
	// Restricted to manager/admin.
	ListSessions(ctx context.Context, tenantID string, params dto.ListSessionsParams, userID string) ([]domain.POSSession, *string, error)
}

// ReportSvcFacade derives read-only X/Z summaries from a session's sales and
// cash movements.
type ReportSvcFacade interface {
	// GenerateXReport aggregates a session in any state. Repeatable; output
	// only changes when the underlying rows do.
	GenerateXReport(ctx context.Context, tenantID, sessionID string, userID string) (*domain.SessionReport, error)

	// GenerateZReport is the definitive end-of-shift record. Requires the
	// session to be CLOSED and is restricted to manager/admin.
	GenerateZReport(ctx context.Context, tenantID, sessionID string, userID string) (*domain.SessionReport, error)
}

// SaleSvcFacade records sale attribution against open sessions on behalf of
// the sales module.
type SaleSvcFacade interface {
	// RecordSale attributes a sale to an open session; a sale racing a
	// close is rejected with ErrInvalidState.
	RecordSale(ctx context.Context, tenantID, sessionID string, req dto.RecordSaleRequest, userID string) (*domain.Sale, error)
}

// RegisterSvcFacade manages cash registers.
type RegisterSvcFacade interface {
	CreateRegister(ctx context.Context, tenantID string, req dto.CreateRegisterRequest, userID string) (*domain.CashRegister, error)
	GetRegister(ctx context.Context, tenantID, registerID string, userID string) (*domain.CashRegister, error)
	ListRegisters(ctx context.Context, tenantID string, userID string) ([]domain.CashRegister, error)
	UpdateRegister(ctx context.Context, tenantID, registerID string, req dto.UpdateRegisterRequest, userID string) (*domain.CashRegister, error)
}
