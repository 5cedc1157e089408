package services

import (
	"context"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/dto"
)

// TenantAuthorizerSvc is the explicit authorization predicate evaluated
// before each state transition. It returns ErrForbidden when the user's role
// does not satisfy the required role, and ErrNotFound when the user is not a
// member of the tenant.
type TenantAuthorizerSvc interface {
	AuthorizeUserAction(ctx context.Context, userID, tenantID string, requiredRole domain.UserTenantRole) error
}

// TenantSvcFacade manages tenants and memberships.
type TenantSvcFacade interface {
	TenantAuthorizerSvc

	CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error)
	ListUserTenants(ctx context.Context, userID string) ([]domain.Tenant, error)

	// AddUserToTenant adds a member with a role; only tenant admins may do
	// this (self-assignment at creation time excepted).
	AddUserToTenant(ctx context.Context, addingUserID, targetUserID, tenantID string, role domain.UserTenantRole) error
}
