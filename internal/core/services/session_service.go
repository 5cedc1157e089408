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
	"github.com/shopspring/decimal"
)

// SessionService handles the POS session lifecycle: open, cash movements,
// close, and lookups.
type SessionService struct {
	sessionRepo  portsrepo.SessionRepositoryFacade
	movementRepo portsrepo.MovementRepositoryFacade
	saleRepo     portsrepo.SaleRepositoryFacade
	registerRepo portsrepo.RegisterRepositoryFacade
	auditRepo    portsrepo.AuditLogRepositoryFacade
	authorizer   portssvc.TenantAuthorizerSvc
}

// NewSessionService creates a new SessionService.
func NewSessionService(
	sessionRepo portsrepo.SessionRepositoryFacade,
	movementRepo portsrepo.MovementRepositoryFacade,
	saleRepo portsrepo.SaleRepositoryFacade,
	registerRepo portsrepo.RegisterRepositoryFacade,
	auditRepo portsrepo.AuditLogRepositoryFacade,
	authorizer portssvc.TenantAuthorizerSvc,
) portssvc.SessionSvcFacade {
	return &SessionService{
		sessionRepo:  sessionRepo,
		movementRepo: movementRepo,
		saleRepo:     saleRepo,
		registerRepo: registerRepo,
		auditRepo:    auditRepo,
		authorizer:   authorizer,
	}
}

var _ portssvc.SessionSvcFacade = (*SessionService)(nil)

// OpenSession opens a new session on a register. Uniqueness of the open
// session per register is enforced by the insert itself; there is no
// check-then-insert window.
func (s *SessionService) OpenSession(ctx context.Context, tenantID string, req dto.OpenSessionRequest, userID string) (*domain.POSSession, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.AuthorizeUserAction(ctx, userID, tenantID, domain.RoleEmployee); err != nil {
		return nil, err
	}

	if req.OpeningAmount.IsNegative() {
		return nil, fmt.Errorf("%w: opening amount must not be negative", apperrors.ErrValidation)
	}

	register, err := s.registerRepo.FindRegisterByID(ctx, tenantID, req.CashRegisterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: cash register %s not found", apperrors.ErrNotFound, req.CashRegisterID)
		}
		logger.Error("Failed to load register for session open", slog.String("error", err.Error()), slog.String("register_id", req.CashRegisterID))
		return nil, fmt.Errorf("failed to load cash register: %w", err)
	}
	if !register.AcceptsSessions() {
		return nil, fmt.Errorf("%w: cash register %s is %s and does not accept sessions", apperrors.ErrInvalidState, register.Code, register.Status)
	}

	now := time.Now()
	session := domain.POSSession{
		SessionID:      uuid.NewString(),
		TenantID:       tenantID,
		CashRegisterID: register.CashRegisterID,
		OpenedByUserID: userID,
		Status:         domain.SessionOpen,
		OpeningAmount:  req.OpeningAmount,
		OpenedAt:       now,
		Notes:          req.Notes,
		AuditFields:    newAuditFields(userID, now),
	}

	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Session open rejected, register already has an open session",
				slog.String("register_id", register.CashRegisterID),
				slog.String("user_id", userID))
			return nil, fmt.Errorf("%w: cash register %s already has an open session", apperrors.ErrConflict, register.Code)
		}
		logger.Error("Failed to create session", slog.String("error", err.Error()), slog.String("register_id", register.CashRegisterID))
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	recordAudit(ctx, s.auditRepo, tenantID, userID, domain.AuditSessionOpened, "pos_session", session.SessionID, map[string]any{
		"cashRegisterID": register.CashRegisterID,
		"openingAmount":  req.OpeningAmount.String(),
	})

	logger.Info("Session opened",
		slog.String("session_id", session.SessionID),
		slog.String("register_id", register.CashRegisterID),
		slog.String("user_id", userID))
	return &session, nil
}

// RegisterCashMovement appends a CASH_IN/CASH_OUT entry to an open session's
// ledger. The insert is conditional on the session still being OPEN.
func (s *SessionService) RegisterCashMovement(ctx context.Context, tenantID, sessionID string, req dto.CashMovementRequest, userID string) (*domain.CashMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.AuthorizeUserAction(ctx, userID, tenantID, domain.RoleEmployee); err != nil {
		return nil, err
	}

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: movement amount must be positive", apperrors.ErrValidation)
	}
	if req.Type != domain.CashIn && req.Type != domain.CashOut {
		return nil, fmt.Errorf("%w: unknown movement type %s", apperrors.ErrValidation, req.Type)
	}

	movement := domain.CashMovement{
		MovementID: uuid.NewString(),
		SessionID:  sessionID,
		Type:       req.Type,
		Amount:     req.Amount,
		Reason:     req.Reason,
		CreatedAt:  time.Now(),
		CreatedBy:  userID,
	}

	if err := s.movementRepo.AppendMovement(ctx, tenantID, movement); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		logger.Error("Failed to append cash movement", slog.String("error", err.Error()), slog.String("session_id", sessionID))
		return nil, fmt.Errorf("failed to register cash movement: %w", err)
	}

	recordAudit(ctx, s.auditRepo, tenantID, userID, domain.AuditMovementRecorded, "cash_movement", movement.MovementID, map[string]any{
		"sessionID": sessionID,
		"type":      string(req.Type),
		"amount":    req.Amount.String(),
	})

	logger.Info("Cash movement recorded",
		slog.String("session_id", sessionID),
		slog.String("movement_id", movement.MovementID),
		slog.String("type", string(req.Type)))
	return &movement, nil
}

// ListCashMovements returns the session's ledger entries in insertion order.
func (s *SessionService) ListCashMovements(ctx context.Context, tenantID, sessionID string, userID string) ([]domain.CashMovement, error) {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, tenantID, domain.RoleEmployee); err != nil {
		return nil, err
	}
	// Session lookup keeps the listing tenant-scoped.
	if _, err := s.sessionRepo.FindSessionByID(ctx, tenantID, sessionID); err != nil {
		return nil, err
	}
	return s.movementRepo.ListMovementsBySession(ctx, sessionID)
}

// CloseSession transitions the session to CLOSED with the physically counted
// amount. Expected cash is recomputed from the movement and sale rows, never
// read from a cached counter, and the variance snapshot is persisted with the
// close.
func (s *SessionService) CloseSession(ctx context.Context, tenantID, sessionID string, req dto.CloseSessionRequest, userID string) (*domain.POSSession, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.AuthorizeUserAction(ctx, userID, tenantID, domain.RoleEmployee); err != nil {
		return nil, err
	}

	if req.ClosingAmount.IsNegative() {
		return nil, fmt.Errorf("%w: closing amount must not be negative", apperrors.ErrValidation)
	}

	session, err := s.sessionRepo.FindSessionByID(ctx, tenantID, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsOpen() {
		return nil, fmt.Errorf("%w: session %s is already closed", apperrors.ErrInvalidState, sessionID)
	}

	// A cashier may only close their own session; closing someone else's
	// requires manager or admin.
	if session.OpenedByUserID != userID {
		if err := s.authorizer.AuthorizeUserAction(ctx, userID, tenantID, domain.RoleManager); err != nil {
			return nil, err
		}
	}

	expected, err := s.expectedCash(ctx, session)
	if err != nil {
		logger.Error("Failed to compute expected cash for close", slog.String("error", err.Error()), slog.String("session_id", sessionID))
		return nil, err
	}
	difference := req.ClosingAmount.Sub(expected)

	now := time.Now()
	closing := portsrepo.SessionClose{
		ClosingAmount:  req.ClosingAmount,
		ExpectedAmount: expected,
		Difference:     difference,
		Notes:          req.Notes,
		ClosedAt:       now,
		ClosedByUserID: userID,
	}
	if err := s.sessionRepo.CloseSession(ctx, tenantID, sessionID, closing); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			logger.Warn("Session close lost the race, already closed", slog.String("session_id", sessionID))
		}
		return nil, err
	}

	recordAudit(ctx, s.auditRepo, tenantID, userID, domain.AuditSessionClosed, "pos_session", sessionID, map[string]any{
		"closingAmount":  req.ClosingAmount.String(),
		"expectedAmount": expected.String(),
		"difference":     difference.String(),
	})

	if !difference.IsZero() {
		logger.Warn("Session closed with cash variance",
			slog.String("session_id", sessionID),
			slog.String("expected", expected.String()),
			slog.String("counted", req.ClosingAmount.String()),
			slog.String("difference", difference.String()))
	} else {
		logger.Info("Session closed", slog.String("session_id", sessionID))
	}

	session.Status = domain.SessionClosed
	session.ClosingAmount = &req.ClosingAmount
	session.ExpectedAmount = &expected
	session.Difference = &difference
	session.ClosedAt = &now
	if req.Notes != "" {
		session.Notes = req.Notes
	}
	session.LastUpdatedAt = now
	session.LastUpdatedBy = userID
	return session, nil
}

// expectedCash derives the drawer cash from the session's opening amount,
// its cash sales and its cash movements.
func (s *SessionService) expectedCash(ctx context.Context, session *domain.POSSession) (decimal.Decimal, error) {
	sales, err := s.saleRepo.AggregateSalesBySession(ctx, session.SessionID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to aggregate sales: %w", err)
	}
	movements, err := s.movementRepo.SumMovementsBySession(ctx, session.SessionID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum cash movements: %w", err)
	}
	return domain.ComputeExpectedCash(session.OpeningAmount, sales.CashAmount(), movements.CashIn, movements.CashOut), nil
}

// GetCurrentSession returns the caller's open session, or nil when there is
// none. Absence is not an error.
func (s *SessionService) GetCurrentSession(ctx context.Context, tenantID, userID string) (*domain.POSSession, error) {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, tenantID, domain.RoleEmployee); err != nil {
		return nil, err
	}
	return s.sessionRepo.FindOpenSessionByUser(ctx, tenantID, userID)
}

// GetSession returns a single session by ID.
func (s *SessionService) GetSession(ctx context.Context, tenantID, sessionID string, userID string) (*domain.POSSession, error) {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, tenantID, domain.RoleEmployee); err != nil {
		return nil, err
	}
	return s.sessionRepo.FindSessionByID(ctx, tenantID, sessionID)
}

// ListSessions returns a filtered, cursor-paginated page of sessions.
// Restricted to manager and admin roles.
func (s *SessionService) ListSessions(ctx context.Context, tenantID string, params dto.ListSessionsParams, userID string) ([]domain.POSSession, *string, error) {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, tenantID, domain.RoleManager); err != nil {
		return nil, nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	filter := portsrepo.SessionFilter{
		CashRegisterID: params.CashRegisterID,
		OpenedByUserID: params.OpenedByUserID,
		From:           params.From,
		To:             params.To,
	}
	if params.Status != nil {
		status := domain.SessionStatus(*params.Status)
		filter.Status = &status
	}

	return s.sessionRepo.ListSessions(ctx, tenantID, filter, limit, params.NextToken)
}
