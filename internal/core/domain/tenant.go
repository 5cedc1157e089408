package domain

import "time"

// Tenant represents an isolated customer organization. All POS data belongs
// to exactly one tenant.
type Tenant struct {
	TenantID    string `json:"tenantID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// UserTenantRole defines the possible roles a user can have within a tenant.
type UserTenantRole string

const (
	RoleAdmin    UserTenantRole = "ADMIN"
	RoleManager  UserTenantRole = "MANAGER"
	RoleEmployee UserTenantRole = "EMPLOYEE"
	RoleRemoved  UserTenantRole = "REMOVED" // For users removed from the tenant
)

// Level returns a comparable rank for role gating. Higher means more access.
func (r UserTenantRole) Level() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleManager:
		return 2
	case RoleEmployee:
		return 1
	default:
		return 0
	}
}

// Satisfies reports whether the role grants at least the required role.
func (r UserTenantRole) Satisfies(required UserTenantRole) bool {
	return r.Level() >= required.Level() && r != RoleRemoved
}

// UserTenant represents the membership of a User in a Tenant.
type UserTenant struct {
	UserID   string         `json:"userID"`
	UserName string         `json:"userName"`
	TenantID string         `json:"tenantID"`
	Role     UserTenantRole `json:"role"`
	JoinedAt time.Time      `json:"joinedAt"`
}
