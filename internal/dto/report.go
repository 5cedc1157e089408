package dto

import (
	"time"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MethodTotal is one line of the sales-by-payment-method breakdown.
type MethodTotal struct {
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	Amount        decimal.Decimal      `json:"amount"`
}

// SessionReportResponse defines the X/Z report payload.
type SessionReportResponse struct {
	Kind             domain.ReportKind    `json:"kind"`
	SessionID        string               `json:"sessionID"`
	CashRegisterID   string               `json:"cashRegisterID"`
	SessionStatus    domain.SessionStatus `json:"sessionStatus"`
	GeneratedAt      time.Time            `json:"generatedAt"`
	OpeningAmount    decimal.Decimal      `json:"openingAmount"`
	TotalSales       decimal.Decimal      `json:"totalSales"`
	TransactionCount int64                `json:"transactionCount"`
	SalesByMethod    []MethodTotal        `json:"salesByMethod"`
	TotalCashIn      decimal.Decimal      `json:"totalCashIn"`
	TotalCashOut     decimal.Decimal      `json:"totalCashOut"`
	ExpectedCash     decimal.Decimal      `json:"expectedCash"`
	ClosingAmount    *decimal.Decimal     `json:"closingAmount,omitempty"`
	Difference       *decimal.Decimal     `json:"difference,omitempty"`
	ClosedAt         *time.Time           `json:"closedAt,omitempty"`
}

// paymentMethodOrder fixes the breakdown ordering so repeated report calls
// serialize identically.
var paymentMethodOrder = []domain.PaymentMethod{
	domain.PaymentCash,
	domain.PaymentCard,
	domain.PaymentTransfer,
	domain.PaymentOther,
}

// ToSessionReportResponse converts a domain report to its response DTO.
func ToSessionReportResponse(r *domain.SessionReport) SessionReportResponse {
	byMethod := make([]MethodTotal, 0, len(r.SalesByMethod))
	for _, method := range paymentMethodOrder {
		if amount, ok := r.SalesByMethod[method]; ok {
			byMethod = append(byMethod, MethodTotal{PaymentMethod: method, Amount: amount})
		}
	}
	return SessionReportResponse{
		Kind:             r.Kind,
		SessionID:        r.SessionID,
		CashRegisterID:   r.CashRegisterID,
		SessionStatus:    r.SessionStatus,
		GeneratedAt:      r.GeneratedAt,
		OpeningAmount:    r.OpeningAmount,
		TotalSales:       r.TotalSales,
		TransactionCount: r.TransactionCount,
		SalesByMethod:    byMethod,
		TotalCashIn:      r.TotalCashIn,
		TotalCashOut:     r.TotalCashOut,
		ExpectedCash:     r.ExpectedCash,
		ClosingAmount:    r.ClosingAmount,
		Difference:       r.Difference,
		ClosedAt:         r.ClosedAt,
	}
}
