package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType indicates the direction of a cash movement.
type MovementType string

const (
	CashIn  MovementType = "CASH_IN"
	CashOut MovementType = "CASH_OUT"
)

// CashMovement is an immutable entry in a session's cash ledger. Movements
// are never updated or deleted once created; corrections are new entries in
// the opposite direction.
type CashMovement struct {
	MovementID string          `json:"movementID"` // Primary Key (UUID)
	SessionID  string          `json:"sessionID"`
	Type       MovementType    `json:"type"`
	Amount     decimal.Decimal `json:"amount"` // Always positive
	Reason     string          `json:"reason"`
	CreatedAt  time.Time       `json:"createdAt"`
	CreatedBy  string          `json:"createdBy"`
}
