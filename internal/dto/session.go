package dto

import (
	"time"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenSessionRequest defines the data needed to open a POS session.
// dgte0 is a custom decimal validator registered at startup; binding's
// numeric min/gt tags do not apply to decimal.Decimal.
type OpenSessionRequest struct {
	CashRegisterID string          `json:"cashRegisterID" binding:"required,uuid"`
	OpeningAmount  decimal.Decimal `json:"openingAmount" binding:"dgte0"`
	Notes          string          `json:"notes"`
}

// CloseSessionRequest defines the data needed to close a POS session with a
// physically counted amount.
type CloseSessionRequest struct {
	ClosingAmount decimal.Decimal `json:"closingAmount" binding:"dgte0"`
	Notes         string          `json:"notes"`
}

// CashMovementRequest defines the data needed to register a cash movement.
type CashMovementRequest struct {
	Type   domain.MovementType `json:"type" binding:"required,oneof=CASH_IN CASH_OUT"`
	Amount decimal.Decimal     `json:"amount" binding:"dgt0"`
	Reason string              `json:"reason"`
}

// SessionResponse defines the data returned for a POS session.
type SessionResponse struct {
	SessionID      string               `json:"sessionID"`
	TenantID       string               `json:"tenantID"`
	CashRegisterID string               `json:"cashRegisterID"`
	OpenedByUserID string               `json:"openedByUserID"`
	Status         domain.SessionStatus `json:"status"`
	OpeningAmount  decimal.Decimal      `json:"openingAmount"`
	ClosingAmount  *decimal.Decimal     `json:"closingAmount,omitempty"`
	ExpectedAmount *decimal.Decimal     `json:"expectedAmount,omitempty"`
	Difference     *decimal.Decimal     `json:"difference,omitempty"`
	OpenedAt       time.Time            `json:"openedAt"`
	ClosedAt       *time.Time           `json:"closedAt,omitempty"`
	Notes          string               `json:"notes"`

	// Populated on open/get with register and user details.
	CashRegister *RegisterResponse `json:"cashRegister,omitempty"`
}

// MovementResponse defines the data returned for a cash movement.
type MovementResponse struct {
	MovementID string              `json:"movementID"`
	SessionID  string              `json:"sessionID"`
	Type       domain.MovementType `json:"type"`
	Amount     decimal.Decimal     `json:"amount"`
	Reason     string              `json:"reason"`
	CreatedAt  time.Time           `json:"createdAt"`
	CreatedBy  string              `json:"createdBy"`
}

// ListSessionsParams defines query parameters for listing sessions.
type ListSessionsParams struct {
	Limit          int        `form:"limit,default=20"`
	NextToken      *string    `form:"nextToken"`
	CashRegisterID *string    `form:"cashRegisterID"`
	Status         *string    `form:"status" binding:"omitempty,oneof=OPEN CLOSED"`
	OpenedByUserID *string    `form:"openedByUserID"`
	From           *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To             *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

// ListSessionsResponse wraps a page of sessions with the cursor token for
// the next page.
type ListSessionsResponse struct {
	Sessions  []SessionResponse `json:"sessions"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToSessionResponse converts a domain session to its response DTO.
func ToSessionResponse(s *domain.POSSession) SessionResponse {
	return SessionResponse{
		SessionID:      s.SessionID,
		TenantID:       s.TenantID,
		CashRegisterID: s.CashRegisterID,
		OpenedByUserID: s.OpenedByUserID,
		Status:         s.Status,
		OpeningAmount:  s.OpeningAmount,
		ClosingAmount:  s.ClosingAmount,
		ExpectedAmount: s.ExpectedAmount,
		Difference:     s.Difference,
		OpenedAt:       s.OpenedAt,
		ClosedAt:       s.ClosedAt,
		Notes:          s.Notes,
	}
}

// ToListSessionsResponse converts a slice of domain sessions plus cursor.
func ToListSessionsResponse(sessions []domain.POSSession, nextToken *string) ListSessionsResponse {
	out := make([]SessionResponse, len(sessions))
	for i := range sessions {
		out[i] = ToSessionResponse(&sessions[i])
	}
	return ListSessionsResponse{Sessions: out, NextToken: nextToken}
}

// ToMovementResponse converts a domain movement to its response DTO.
func ToMovementResponse(m *domain.CashMovement) MovementResponse {
	return MovementResponse{
		MovementID: m.MovementID,
		SessionID:  m.SessionID,
		Type:       m.Type,
		Amount:     m.Amount,
		Reason:     m.Reason,
		CreatedAt:  m.CreatedAt,
		CreatedBy:  m.CreatedBy,
	}
}
