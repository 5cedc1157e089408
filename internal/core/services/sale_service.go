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

// SaleService records sale attribution against open sessions. The sales
// module owns the full sale lifecycle; this service only pins each sale to a
// session for drawer accounting.
type SaleService struct {
	saleRepo   portsrepo.SaleRepositoryFacade
	auditRepo  portsrepo.AuditLogRepositoryFacade
	authorizer portssvc.TenantAuthorizerSvc
}

// NewSaleService creates a new SaleService.
func NewSaleService(
	saleRepo portsrepo.SaleRepositoryFacade,
	auditRepo portsrepo.AuditLogRepositoryFacade,
	authorizer portssvc.TenantAuthorizerSvc,
) portssvc.SaleSvcFacade {
	return &SaleService{
		saleRepo:   saleRepo,
		auditRepo:  auditRepo,
		authorizer: authorizer,
	}
}

var _ portssvc.SaleSvcFacade = (*SaleService)(nil)

// RecordSale attributes a sale to an open session. The insert is conditional
// on the session still being OPEN, so a sale racing a concurrent close is
// rejected rather than landing on a closed session.
func (s *SaleService) RecordSale(ctx context.Context, tenantID, sessionID string, req dto.RecordSaleRequest, userID string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.AuthorizeUserAction(ctx, userID, tenantID, domain.RoleEmployee); err != nil {
		return nil, err
	}

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: sale amount must be positive", apperrors.ErrValidation)
	}
	if !domain.ValidPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("%w: unknown payment method %s", apperrors.ErrValidation, req.PaymentMethod)
	}

	sale := domain.Sale{
		SaleID:        uuid.NewString(),
		TenantID:      tenantID,
		SessionID:     sessionID,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
		Reference:     req.Reference,
		CreatedAt:     time.Now(),
		CreatedBy:     userID,
	}

	if err := s.saleRepo.AppendSale(ctx, sale); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		logger.Error("Failed to record sale", slog.String("error", err.Error()), slog.String("session_id", sessionID))
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	recordAudit(ctx, s.auditRepo, tenantID, userID, domain.AuditSaleRecorded, "pos_sale", sale.SaleID, map[string]any{
		"sessionID":     sessionID,
		"paymentMethod": string(req.PaymentMethod),
		"amount":        req.Amount.String(),
	})

	logger.Info("Sale recorded",
		slog.String("session_id", sessionID),
		slog.String("sale_id", sale.SaleID),
		slog.String("payment_method", string(req.PaymentMethod)))
	return &sale, nil
}
