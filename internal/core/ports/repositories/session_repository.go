package repositories

import (
	"context"
	"time"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SessionFilter narrows a session listing.
type SessionFilter struct {
	CashRegisterID *string
	Status         *domain.SessionStatus
	OpenedByUserID *string
	From           *time.Time
	To             *time.Time
}

// SessionClose carries the values persisted by the atomic close update.
type SessionClose struct {
	ClosingAmount  decimal.Decimal
	ExpectedAmount decimal.Decimal
	Difference     decimal.Decimal
	Notes          string
	ClosedAt       time.Time
	ClosedByUserID string
}

// SessionRepositoryFacade defines persistence operations for POS sessions.
type SessionRepositoryFacade interface {
	// CreateSession inserts a session row with status OPEN. The pos_sessions
	// partial unique index rejects a second OPEN session on the same
	// register; that violation surfaces as apperrors.ErrConflict. This is
	// the single atomic check-and-insert required by the one-open-session
	// invariant; callers must not pre-check with a SELECT.
	CreateSession(ctx context.Context, session domain.POSSession) error

	// FindSessionByID returns the session or apperrors.ErrNotFound. The
	// lookup is tenant-scoped.
	FindSessionByID(ctx context.Context, tenantID, sessionID string) (*domain.POSSession, error)

	// FindOpenSessionByUser returns the user's OPEN session, or nil when the
	// user has none.
	FindOpenSessionByUser(ctx context.Context, tenantID, userID string) (*domain.POSSession, error)

	// CloseSession atomically transitions the session from OPEN to CLOSED,
	// conditioned on its current status. If the row is not OPEN anymore the
	// update affects zero rows and apperrors.ErrInvalidState is returned;
	// if no row exists at all, apperrors.ErrNotFound.
	CloseSession(ctx context.Context, tenantID, sessionID string, close SessionClose) error

	// ListSessions returns a page of sessions ordered by openedAt DESC with
	// a cursor token for the next page.
	ListSessions(ctx context.Context, tenantID string, filter SessionFilter, limit int, nextToken *string) ([]domain.POSSession, *string, error)
}

// MovementRepositoryFacade defines persistence operations for the session
// cash ledger. Movements are append-only.
type MovementRepositoryFacade interface {
	// AppendMovement inserts a movement conditionally on its session still
	// being OPEN; apperrors.ErrNotFound when the session does not exist,
	// apperrors.ErrInvalidState when it exists but is not OPEN.
	AppendMovement(ctx context.Context, tenantID string, movement domain.CashMovement) error

	// ListMovementsBySession returns all movements of a session in insertion
	// order.
	ListMovementsBySession(ctx context.Context, sessionID string) ([]domain.CashMovement, error)

	// SumMovementsBySession returns the CASH_IN and CASH_OUT totals.
	SumMovementsBySession(ctx context.Context, sessionID string) (domain.MovementAggregate, error)
}

// SaleRepositoryFacade defines the sale attribution and aggregation
// operations this service owns. The full sale lifecycle lives in the sales
// module.
type SaleRepositoryFacade interface {
	// AppendSale inserts a sale conditionally on its session still being
	// OPEN; apperrors.ErrNotFound when the session does not exist,
	// apperrors.ErrInvalidState when it exists but is not OPEN.
	AppendSale(ctx context.Context, sale domain.Sale) error

	// AggregateSalesBySession returns per-payment-method totals and the
	// transaction count for a session.
	AggregateSalesBySession(ctx context.Context, sessionID string) (domain.SaleAggregate, error)
}
