package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod classifies how a sale was paid. Only CASH sales affect the
// expected drawer cash.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentOther    PaymentMethod = "OTHER"
)

// ValidPaymentMethod reports whether m is one of the known payment methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentOther:
		return true
	}
	return false
}

// Sale is a transaction attributed to an open session. The sales module owns
// the full sale lifecycle (lines, invoicing, voids); this service records the
// session attribution and aggregates over it for reports.
type Sale struct {
	SaleID        string          `json:"saleID"` // Primary Key (UUID)
	TenantID      string          `json:"tenantID"`
	SessionID     string          `json:"sessionID"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount"` // Always positive
	Reference     string          `json:"reference"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}
