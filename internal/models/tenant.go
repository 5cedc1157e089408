package models

import "time"

// Tenant represents a tenant row.
type Tenant struct {
	TenantID    string `json:"tenantID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// UserTenant represents a tenant membership row.
type UserTenant struct {
	UserID   string    `json:"userID"`
	UserName string    `json:"userName"`
	TenantID string    `json:"tenantID"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}
