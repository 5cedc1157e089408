package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/apperrors"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	portsrepo "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/repositories"
	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/dto"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/middleware"
	"github.com/google/uuid"
)

// RegisterService handles business logic for cash registers.
type RegisterService struct {
	registerRepo portsrepo.RegisterRepositoryFacade
	auditRepo    portsrepo.AuditLogRepositoryFacade
	authorizer   portssvc.TenantAuthorizerSvc
}

// NewRegisterService creates a new RegisterService.
func NewRegisterService(
	registerRepo portsrepo.RegisterRepositoryFacade,
	auditRepo portsrepo.AuditLogRepositoryFacade,
	authorizer portssvc.TenantAuthorizerSvc,
) portssvc.RegisterSvcFacade {
	return &RegisterService{
		registerRepo: registerRepo,
		auditRepo:    auditRepo,
		authorizer:   authorizer,
	}
}

var _ portssvc.RegisterSvcFacade = (*RegisterService)(nil)

// CreateRegister creates a cash register. Restricted to tenant admins; the
// register code is unique per tenant.
func (s *RegisterService) CreateRegister(ctx context.Context, tenantID string, req dto.CreateRegisterRequest, userID string) (*domain.CashRegister, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.AuthorizeUserAction(ctx, userID, tenantID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	now := time.Now()
	register := domain.CashRegister{
		CashRegisterID: uuid.NewString(),
		TenantID:       tenantID,
		Name:           req.Name,
		Code:           strings.ToUpper(req.Code),
		WarehouseID:    req.WarehouseID,
		Status:         domain.RegisterOpen,
		Description:    req.Description,
		AuditFields:    newAuditFields(userID, now),
	}

	if err := s.registerRepo.SaveRegister(ctx, register); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: register code %s already exists in tenant", apperrors.ErrConflict, register.Code)
		}
		logger.Error("Failed to save cash register", slog.String("error", err.Error()), slog.String("code", register.Code))
		return nil, fmt.Errorf("failed to create cash register: %w", err)
	}

	recordAudit(ctx, s.auditRepo, tenantID, userID, domain.AuditRegisterCreated, "cash_register", register.CashRegisterID, map[string]any{
		"code":        register.Code,
		"warehouseID": register.WarehouseID,
	})

	logger.Info("Cash register created", slog.String("register_id", register.CashRegisterID), slog.String("code", register.Code))
	return &register, nil
}

// GetRegister returns a single register by ID.
func (s *RegisterService) GetRegister(ctx context.Context, tenantID, registerID string, userID string) (*domain.CashRegister, error) {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, tenantID, domain.RoleEmployee); err != nil {
		return nil, err
	}
	return s.registerRepo.FindRegisterByID(ctx, tenantID, registerID)
}

// ListRegisters returns all registers of a tenant.
func (s *RegisterService) ListRegisters(ctx context.Context, tenantID string, userID string) ([]domain.CashRegister, error) {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, tenantID, domain.RoleEmployee); err != nil {
		return nil, err
	}
	return s.registerRepo.ListRegistersByTenant(ctx, tenantID)
}

// UpdateRegister updates name, description or status. Admin only. Registers
// are never deleted; retiring one means setting its status to CLOSED or
// SUSPENDED.
func (s *RegisterService) UpdateRegister(ctx context.Context, tenantID, registerID string, req dto.UpdateRegisterRequest, userID string) (*domain.CashRegister, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.AuthorizeUserAction(ctx, userID, tenantID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	register, err := s.registerRepo.FindRegisterByID(ctx, tenantID, registerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		register.Name = *req.Name
	}
	if req.Description != nil {
		register.Description = *req.Description
	}
	if req.Status != nil {
		register.Status = *req.Status
	}
	register.LastUpdatedAt = time.Now()
	register.LastUpdatedBy = userID

	if err := s.registerRepo.UpdateRegister(ctx, *register); err != nil {
		logger.Error("Failed to update cash register", slog.String("error", err.Error()), slog.String("register_id", registerID))
		return nil, fmt.Errorf("failed to update cash register: %w", err)
	}

	recordAudit(ctx, s.auditRepo, tenantID, userID, domain.AuditRegisterUpdated, "cash_register", registerID, map[string]any{
		"status": string(register.Status),
	})

	logger.Info("Cash register updated", slog.String("register_id", registerID))
	return register, nil
}
