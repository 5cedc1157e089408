package dto

import (
	"time"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordSaleRequest defines the data needed to attribute a sale to a session.
type RecordSaleRequest struct {
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CASH CARD TRANSFER OTHER"`
	Amount        decimal.Decimal      `json:"amount" binding:"dgt0"`
	Reference     string               `json:"reference"`
}

// SaleResponse defines the data returned for a recorded sale.
type SaleResponse struct {
	SaleID        string               `json:"saleID"`
	SessionID     string               `json:"sessionID"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	Amount        decimal.Decimal      `json:"amount"`
	Reference     string               `json:"reference"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
}

// ToSaleResponse converts a domain sale to its response DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:        s.SaleID,
		SessionID:     s.SessionID,
		PaymentMethod: s.PaymentMethod,
		Amount:        s.Amount,
		Reference:     s.Reference,
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
	}
}
