package domain

// RegisterStatus indicates whether a cash register accepts new sessions.
type RegisterStatus string

const (
	RegisterOpen      RegisterStatus = "OPEN"
	RegisterClosed    RegisterStatus = "CLOSED"
	RegisterSuspended RegisterStatus = "SUSPENDED"
)

// CashRegister is a named, tenant-scoped register tied to a warehouse.
// Registers are never hard-deleted; historical sessions reference them.
type CashRegister struct {
	CashRegisterID string         `json:"cashRegisterID"` // Primary Key (UUID)
	TenantID       string         `json:"tenantID"`
	Name           string         `json:"name"`
	Code           string         `json:"code"` // Unique per tenant
	WarehouseID    string         `json:"warehouseID"`
	Status         RegisterStatus `json:"status"`
	Description    string         `json:"description"`
	AuditFields
}

// AcceptsSessions reports whether a new session may be opened on the register.
func (r *CashRegister) AcceptsSessions() bool {
	return r.Status == RegisterOpen
}
