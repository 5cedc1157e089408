package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionStatus mirrors domain.SessionStatus at the row level.
type SessionStatus string

const (
	SessionOpen   SessionStatus = "OPEN"
	SessionClosed SessionStatus = "CLOSED"
)

// POSSession represents a pos_sessions row. Closing columns are pointers;
// they stay NULL until the session is closed.
type POSSession struct {
	SessionID      string          `json:"sessionID"`
	TenantID       string          `json:"tenantID"`
	CashRegisterID string          `json:"cashRegisterID"`
	OpenedByUserID string          `json:"openedByUserID"`
	Status         SessionStatus   `json:"status"`
	OpeningAmount  decimal.Decimal `json:"openingAmount"`
	ClosingAmount  *decimal.Decimal `json:"closingAmount"`
	ExpectedAmount *decimal.Decimal `json:"expectedAmount"`
	Difference     *decimal.Decimal `json:"difference"`
	OpenedAt       time.Time        `json:"openedAt"`
	ClosedAt       *time.Time       `json:"closedAt"`
	Notes          string           `json:"notes"`
	AuditFields
}

// CashMovement represents a cash_movements row. Append-only.
type CashMovement struct {
	MovementID string          `json:"movementID"`
	SessionID  string          `json:"sessionID"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	CreatedAt  time.Time       `json:"createdAt"`
	CreatedBy  string          `json:"createdBy"`
}

// Sale represents a pos_sales row.
type Sale struct {
	SaleID        string          `json:"saleID"`
	TenantID      string          `json:"tenantID"`
	SessionID     string          `json:"sessionID"`
	PaymentMethod string          `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount"`
	Reference     string          `json:"reference"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}
