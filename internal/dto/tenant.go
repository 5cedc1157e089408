package dto

import (
	"time"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
)

// CreateTenantRequest defines the data needed to create a tenant.
type CreateTenantRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// AddTenantMemberRequest defines the data needed to add a user to a tenant.
type AddTenantMemberRequest struct {
	UserID string                `json:"userID" binding:"required,uuid"`
	Role   domain.UserTenantRole `json:"role" binding:"required,oneof=ADMIN MANAGER EMPLOYEE"`
}

// TenantResponse defines the data returned for a tenant.
type TenantResponse struct {
	TenantID    string    `json:"tenantID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListTenantsResponse wraps the tenants a user belongs to.
type ListTenantsResponse struct {
	Tenants []TenantResponse `json:"tenants"`
}

// ToTenantResponse converts a domain tenant to its response DTO.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:    t.TenantID,
		Name:        t.Name,
		Description: t.Description,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
	}
}

// ToListTenantsResponse converts a slice of domain tenants.
func ToListTenantsResponse(tenants []domain.Tenant) ListTenantsResponse {
	out := make([]TenantResponse, len(tenants))
	for i := range tenants {
		out[i] = ToTenantResponse(&tenants[i])
	}
	return ListTenantsResponse{Tenants: out}
}
