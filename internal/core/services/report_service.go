package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/apperrors"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	portsrepo "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/repositories"
	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/middleware"
)

// ReportService derives X and Z summaries from a session's sales and cash
// movements. Reports are computed on demand and never stored.
type ReportService struct {
	sessionRepo  portsrepo.SessionRepositoryFacade
	movementRepo portsrepo.MovementRepositoryFacade
	saleRepo     portsrepo.SaleRepositoryFacade
	authorizer   portssvc.TenantAuthorizerSvc
}

// NewReportService creates a new ReportService.
func NewReportService(
	sessionRepo portsrepo.SessionRepositoryFacade,
	movementRepo portsrepo.MovementRepositoryFacade,
	saleRepo portsrepo.SaleRepositoryFacade,
	authorizer portssvc.TenantAuthorizerSvc,
) portssvc.ReportSvcFacade {
	return &ReportService{
		sessionRepo:  sessionRepo,
		movementRepo: movementRepo,
		saleRepo:     saleRepo,
		authorizer:   authorizer,
	}
}

var _ portssvc.ReportSvcFacade = (*ReportService)(nil)

// GenerateXReport aggregates a session in any state. It can be generated
// repeatedly; with no intervening writes the output is identical.
func (s *ReportService) GenerateXReport(ctx context.Context, tenantID, sessionID string, userID string) (*domain.SessionReport, error) {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, tenantID, domain.RoleEmployee); err != nil {
		return nil, err
	}
	return s.buildReport(ctx, tenantID, sessionID, domain.ReportX)
}

// GenerateZReport is the definitive end-of-shift record and requires the
// session to be CLOSED. Restricted to manager and admin roles.
func (s *ReportService) GenerateZReport(ctx context.Context, tenantID, sessionID string, userID string) (*domain.SessionReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.AuthorizeUserAction(ctx, userID, tenantID, domain.RoleManager); err != nil {
		return nil, err
	}

	report, err := s.buildReport(ctx, tenantID, sessionID, domain.ReportZ)
	if err != nil {
		return nil, err
	}
	if report.SessionStatus != domain.SessionClosed {
		logger.Warn("Z report requested on open session", slog.String("session_id", sessionID))
		return nil, fmt.Errorf("%w: Z report requires a closed session", apperrors.ErrInvalidState)
	}
	return report, nil
}

func (s *ReportService) buildReport(ctx context.Context, tenantID, sessionID string, kind domain.ReportKind) (*domain.SessionReport, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, tenantID, sessionID)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.AggregateSalesBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales for report: %w", err)
	}
	movements, err := s.movementRepo.SumMovementsBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum movements for report: %w", err)
	}

	report := &domain.SessionReport{
		Kind:             kind,
		SessionID:        session.SessionID,
		CashRegisterID:   session.CashRegisterID,
		SessionStatus:    session.Status,
		GeneratedAt:      time.Now(),
		OpeningAmount:    session.OpeningAmount,
		TotalSales:       sales.TotalAmount(),
		TransactionCount: sales.Count,
		SalesByMethod:    sales.ByMethod,
		TotalCashIn:      movements.CashIn,
		TotalCashOut:     movements.CashOut,
		ExpectedCash:     domain.ComputeExpectedCash(session.OpeningAmount, sales.CashAmount(), movements.CashIn, movements.CashOut),
	}

	// Close snapshot fields only carry over once the session is closed.
	if session.Status == domain.SessionClosed {
		report.ClosingAmount = session.ClosingAmount
		report.Difference = session.Difference
		report.ClosedAt = session.ClosedAt
	}
	return report, nil
}
