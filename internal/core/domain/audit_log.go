package domain

import "time"

// AuditLog records an operational event for traceability. Writes are
// best-effort: a failed audit insert is logged and must never abort the
// primary operation.
type AuditLog struct {
	AuditLogID string    `json:"auditLogID"` // Primary Key (UUID)
	TenantID   string    `json:"tenantID"`
	UserID     string    `json:"userID"`
	Action     string    `json:"action"` // e.g. SESSION_OPENED, SESSION_CLOSED
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityID"`
	Detail     string    `json:"detail"` // JSON payload
	CreatedAt  time.Time `json:"createdAt"`
}

// Audit actions recorded by the POS session subsystem.
const (
	AuditSessionOpened    = "SESSION_OPENED"
	AuditSessionClosed    = "SESSION_CLOSED"
	AuditMovementRecorded = "CASH_MOVEMENT_RECORDED"
	AuditSaleRecorded     = "SALE_RECORDED"
	AuditRegisterCreated  = "CASH_REGISTER_CREATED"
	AuditRegisterUpdated  = "CASH_REGISTER_UPDATED"
)
