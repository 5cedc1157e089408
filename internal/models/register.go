package models

// RegisterStatus mirrors domain.RegisterStatus at the row level.
type RegisterStatus string

const (
	RegisterOpen      RegisterStatus = "OPEN"
	RegisterClosed    RegisterStatus = "CLOSED"
	RegisterSuspended RegisterStatus = "SUSPENDED"
)

// CashRegister represents a cash register row.
type CashRegister struct {
	CashRegisterID string         `json:"cashRegisterID"`
	TenantID       string         `json:"tenantID"`
	Name           string         `json:"name"`
	Code           string         `json:"code"`
	WarehouseID    string         `json:"warehouseID"`
	Status         RegisterStatus `json:"status"`
	Description    string         `json:"description"`
	AuditFields
}
