package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionStatus indicates the state of a POS session. CLOSED is terminal;
// there is no re-open transition.
type SessionStatus string

const (
	SessionOpen   SessionStatus = "OPEN"
	SessionClosed SessionStatus = "CLOSED"
)

// POSSession is one cashier's continuous period of register use, bounded by
// Open and Close. At most one OPEN session may exist per cash register at any
// time; the database enforces this with a partial unique index.
type POSSession struct {
	SessionID      string        `json:"sessionID"` // Primary Key (UUID)
	TenantID       string        `json:"tenantID"`
	CashRegisterID string        `json:"cashRegisterID"`
	OpenedByUserID string        `json:"openedByUserID"`
	Status         SessionStatus `json:"status"`
	OpeningAmount  decimal.Decimal `json:"openingAmount"`
	// ClosingAmount, ExpectedAmount and Difference are nil until the session
	// is closed. Difference = ClosingAmount - ExpectedAmount; negative means
	// a shortfall at the physical count.
	ClosingAmount  *decimal.Decimal `json:"closingAmount,omitempty"`
	ExpectedAmount *decimal.Decimal `json:"expectedAmount,omitempty"`
	Difference     *decimal.Decimal `json:"difference,omitempty"`
	OpenedAt       time.Time        `json:"openedAt"`
	ClosedAt       *time.Time       `json:"closedAt,omitempty"`
	Notes          string           `json:"notes"`
	AuditFields
}

// IsOpen reports whether the session still accepts movements and sales.
func (s *POSSession) IsOpen() bool {
	return s.Status == SessionOpen
}

// ComputeExpectedCash derives the cash that should be in the drawer:
//
//	openingAmount + sum of cash sales + sum of CASH_IN - sum of CASH_OUT
//
// Totals are always recomputed from the movement and sale rows rather than
// maintained as running counters on the session row.
func ComputeExpectedCash(openingAmount, cashSales, cashIn, cashOut decimal.Decimal) decimal.Decimal {
	return openingAmount.Add(cashSales).Add(cashIn).Sub(cashOut)
}
