package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportKind distinguishes the intraday X report from the final Z report.
type ReportKind string

const (
	ReportX ReportKind = "X"
	ReportZ ReportKind = "Z"
)

// SessionReport is a read-only summary derived from a session's sales and
// cash movements. It is computed on demand and never stored; generating it
// twice with no intervening writes yields identical values.
type SessionReport struct {
	Kind             ReportKind                      `json:"kind"`
	SessionID        string                          `json:"sessionID"`
	CashRegisterID   string                          `json:"cashRegisterID"`
	SessionStatus    SessionStatus                   `json:"sessionStatus"`
	GeneratedAt      time.Time                       `json:"generatedAt"`
	OpeningAmount    decimal.Decimal                 `json:"openingAmount"`
	TotalSales       decimal.Decimal                 `json:"totalSales"`
	TransactionCount int64                           `json:"transactionCount"`
	SalesByMethod    map[PaymentMethod]decimal.Decimal `json:"salesByMethod"`
	TotalCashIn      decimal.Decimal                 `json:"totalCashIn"`
	TotalCashOut     decimal.Decimal                 `json:"totalCashOut"`
	ExpectedCash     decimal.Decimal                 `json:"expectedCash"`

	// Z-only fields, taken from the closing record.
	ClosingAmount *decimal.Decimal `json:"closingAmount,omitempty"`
	Difference    *decimal.Decimal `json:"difference,omitempty"`
	ClosedAt      *time.Time       `json:"closedAt,omitempty"`
}

// SaleAggregate is the per-method sales summary a repository returns for a
// session.
type SaleAggregate struct {
	ByMethod map[PaymentMethod]decimal.Decimal
	Count    int64
}

// TotalAmount sums the per-method totals.
func (a SaleAggregate) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, amt := range a.ByMethod {
		total = total.Add(amt)
	}
	return total
}

// CashAmount returns the CASH portion of the aggregate.
func (a SaleAggregate) CashAmount() decimal.Decimal {
	if amt, ok := a.ByMethod[PaymentCash]; ok {
		return amt
	}
	return decimal.Zero
}

// MovementAggregate holds the summed cash-in and cash-out totals for a
// session. Both values are positive; direction is carried by the field.
type MovementAggregate struct {
	CashIn  decimal.Decimal
	CashOut decimal.Decimal
}
