package dto

import (
	"time"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
)

// CreateRegisterRequest defines the data needed to create a cash register.
type CreateRegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required,alphanum"`
	WarehouseID string `json:"warehouseID" binding:"required,uuid"`
	Description string `json:"description"`
}

// UpdateRegisterRequest defines the data allowed for updating a register.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateRegisterRequest struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Status      *domain.RegisterStatus `json:"status" binding:"omitempty,oneof=OPEN CLOSED SUSPENDED"`
}

// RegisterResponse defines the data returned for a cash register.
type RegisterResponse struct {
	CashRegisterID string                `json:"cashRegisterID"`
	TenantID       string                `json:"tenantID"`
	Name           string                `json:"name"`
	Code           string                `json:"code"`
	WarehouseID    string                `json:"warehouseID"`
	Status         domain.RegisterStatus `json:"status"`
	Description    string                `json:"description"`
	CreatedAt      time.Time             `json:"createdAt"`
	LastUpdatedAt  time.Time             `json:"lastUpdatedAt"`
}

// ListRegistersResponse wraps the list of registers.
type ListRegistersResponse struct {
	Registers []RegisterResponse `json:"registers"`
}

// ToRegisterResponse converts a domain register to its response DTO.
func ToRegisterResponse(r *domain.CashRegister) RegisterResponse {
	return RegisterResponse{
		CashRegisterID: r.CashRegisterID,
		TenantID:       r.TenantID,
		Name:           r.Name,
		Code:           r.Code,
		WarehouseID:    r.WarehouseID,
		Status:         r.Status,
		Description:    r.Description,
		CreatedAt:      r.CreatedAt,
		LastUpdatedAt:  r.LastUpdatedAt,
	}
}

// ToListRegistersResponse converts a slice of domain registers.
func ToListRegistersResponse(registers []domain.CashRegister) ListRegistersResponse {
	out := make([]RegisterResponse, len(registers))
	for i := range registers {
		out[i] = ToRegisterResponse(&registers[i])
	}
	return ListRegistersResponse{Registers: out}
}
