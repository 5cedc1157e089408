package mapping

import (
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/models"
)

// ToModelSession converts a domain session to its row representation.
func ToModelSession(s domain.POSSession) models.POSSession {
	return models.POSSession{
		SessionID:      s.SessionID,
		TenantID:       s.TenantID,
		CashRegisterID: s.CashRegisterID,
		OpenedByUserID: s.OpenedByUserID,
		Status:         models.SessionStatus(s.Status),
		OpeningAmount:  s.OpeningAmount,
		ClosingAmount:  s.ClosingAmount,
		ExpectedAmount: s.ExpectedAmount,
		Difference:     s.Difference,
		OpenedAt:       s.OpenedAt,
		ClosedAt:       s.ClosedAt,
		Notes:          s.Notes,
		AuditFields:    ToModelAuditFields(s.AuditFields),
	}
}

// ToDomainSession converts a session row to its domain representation.
func ToDomainSession(m models.POSSession) domain.POSSession {
	return domain.POSSession{
		SessionID:      m.SessionID,
		TenantID:       m.TenantID,
		CashRegisterID: m.CashRegisterID,
		OpenedByUserID: m.OpenedByUserID,
		Status:         domain.SessionStatus(m.Status),
		OpeningAmount:  m.OpeningAmount,
		ClosingAmount:  m.ClosingAmount,
		ExpectedAmount: m.ExpectedAmount,
		Difference:     m.Difference,
		OpenedAt:       m.OpenedAt,
		ClosedAt:       m.ClosedAt,
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSessionSlice converts a slice of session rows.
func ToDomainSessionSlice(ms []models.POSSession) []domain.POSSession {
	out := make([]domain.POSSession, len(ms))
	for i, m := range ms {
		out[i] = ToDomainSession(m)
	}
	return out
}

// ToDomainMovement converts a movement row to its domain representation.
func ToDomainMovement(m models.CashMovement) domain.CashMovement {
	return domain.CashMovement{
		MovementID: m.MovementID,
		SessionID:  m.SessionID,
		Type:       domain.MovementType(m.Type),
		Amount:     m.Amount,
		Reason:     m.Reason,
		CreatedAt:  m.CreatedAt,
		CreatedBy:  m.CreatedBy,
	}
}

// ToDomainMovementSlice converts a slice of movement rows.
func ToDomainMovementSlice(ms []models.CashMovement) []domain.CashMovement {
	out := make([]domain.CashMovement, len(ms))
	for i, m := range ms {
		out[i] = ToDomainMovement(m)
	}
	return out
}

// ToDomainSale converts a sale row to its domain representation.
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:        m.SaleID,
		TenantID:      m.TenantID,
		SessionID:     m.SessionID,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Amount:        m.Amount,
		Reference:     m.Reference,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}
