package repositories

import (
	"context"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
)

// TenantRepositoryFacade defines persistence operations for tenants and
// their memberships.
type TenantRepositoryFacade interface {
	SaveTenant(ctx context.Context, tenant domain.Tenant) error
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
	ListTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error)

	// AddUserToTenant upserts a membership row.
	AddUserToTenant(ctx context.Context, membership domain.UserTenant) error

	// FindUserTenantRole returns the membership or apperrors.ErrNotFound
	// when the user does not belong to the tenant.
	FindUserTenantRole(ctx context.Context, userID, tenantID string) (*domain.UserTenant, error)
}
