package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/apperrors"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	portsrepo "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/repositories"
	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/dto"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/middleware"
	"github.com/google/uuid"
)

// TenantService handles business logic for tenants and memberships, and is
// the single authorization predicate for tenant-scoped actions.
type TenantService struct {
	tenantRepo portsrepo.TenantRepositoryFacade
}

// NewTenantService creates a new TenantService.
func NewTenantService(tr portsrepo.TenantRepositoryFacade) portssvc.TenantSvcFacade {
	return &TenantService{tenantRepo: tr}
}

var _ portssvc.TenantSvcFacade = (*TenantService)(nil)

// AuthorizeUserAction checks that the user belongs to the tenant with at
// least the required role. ErrNotFound means no membership at all; a REMOVED
// or insufficient role yields ErrForbidden.
func (s *TenantService) AuthorizeUserAction(ctx context.Context, userID, tenantID string, requiredRole domain.UserTenantRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	membership, err := s.tenantRepo.FindUserTenantRole(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user %s is not a member of tenant %s", apperrors.ErrForbidden, userID, tenantID)
		}
		logger.Error("Failed to look up tenant membership", slog.String("error", err.Error()), slog.String("user_id", userID), slog.String("tenant_id", tenantID))
		return fmt.Errorf("failed to check tenant membership: %w", err)
	}

	if !membership.Role.Satisfies(requiredRole) {
		logger.Warn("Tenant action denied by role check",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID),
			slog.String("role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return fmt.Errorf("%w: role %s does not satisfy %s", apperrors.ErrForbidden, membership.Role, requiredRole)
	}
	return nil
}

// CreateTenant creates a tenant and makes the creator its initial admin.
func (s *TenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	tenant := domain.Tenant{
		TenantID:    uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		logger.Error("Failed to save tenant", slog.String("error", err.Error()), slog.String("tenant_name", req.Name))
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	membership := domain.UserTenant{
		UserID:   creatorUserID,
		TenantID: tenant.TenantID,
		Role:     domain.RoleAdmin,
		JoinedAt: now,
	}
	if err := s.tenantRepo.AddUserToTenant(ctx, membership); err != nil {
		logger.Error("Failed to add creator as admin to new tenant", slog.String("error", err.Error()), slog.String("tenant_id", tenant.TenantID), slog.String("user_id", creatorUserID))
		return nil, fmt.Errorf("failed to assign tenant admin: %w", err)
	}

	logger.Info("Tenant created", slog.String("tenant_id", tenant.TenantID), slog.String("creator_user_id", creatorUserID))
	return &tenant, nil
}

// ListUserTenants returns the tenants the user belongs to.
func (s *TenantService) ListUserTenants(ctx context.Context, userID string) ([]domain.Tenant, error) {
	tenants, err := s.tenantRepo.ListTenantsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants for user %s: %w", userID, err)
	}
	return tenants, nil
}

// AddUserToTenant adds a member with a role. Only tenant admins may add
// members.
func (s *TenantService) AddUserToTenant(ctx context.Context, addingUserID, targetUserID, tenantID string, role domain.UserTenantRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, addingUserID, tenantID, domain.RoleAdmin); err != nil {
		return err
	}

	membership := domain.UserTenant{
		UserID:   targetUserID,
		TenantID: tenantID,
		Role:     role,
		JoinedAt: time.Now(),
	}
	if err := s.tenantRepo.AddUserToTenant(ctx, membership); err != nil {
		logger.Error("Failed to add user to tenant", slog.String("error", err.Error()), slog.String("tenant_id", tenantID), slog.String("target_user_id", targetUserID))
		return fmt.Errorf("failed to add user to tenant: %w", err)
	}

	logger.Info("User added to tenant",
		slog.String("tenant_id", tenantID),
		slog.String("target_user_id", targetUserID),
		slog.String("role", string(role)),
		slog.String("added_by", addingUserID))
	return nil
}
