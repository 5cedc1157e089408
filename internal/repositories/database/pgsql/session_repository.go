package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/apperrors"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	portsrepo "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/repositories"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/models"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/utils/mapping"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// oneOpenSessionIndex is the partial unique index enforcing "at most one
// OPEN session per cash register" (see migrations).
const oneOpenSessionIndex = "pos_sessions_one_open_per_register"

type PgxSessionRepository struct {
	BaseRepository
}

// NewPgxSessionRepository creates a new repository for POS session data.
func NewPgxSessionRepository(pool *pgxpool.Pool) portsrepo.SessionRepositoryFacade {
	return &PgxSessionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)

const sessionColumns = `
	session_id, tenant_id, cash_register_id, opened_by_user_id, status,
	opening_amount, closing_amount, expected_amount, difference,
	opened_at, closed_at, notes,
	created_at, created_by, last_updated_at, last_updated_by
`

// CreateSession inserts a session row with status OPEN. The open-session
// invariant is enforced entirely by the partial unique index; a violation
// maps to ErrConflict. No SELECT precedes the insert, so concurrent opens on
// the same register cannot race past each other.
func (r *PgxSessionRepository) CreateSession(ctx context.Context, session domain.POSSession) error {
	m := mapping.ToModelSession(session)
	query := `
		INSERT INTO pos_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SessionID,
		m.TenantID,
		m.CashRegisterID,
		m.OpenedByUserID,
		m.Status,
		m.OpeningAmount,
		m.ClosingAmount,
		m.ExpectedAmount,
		m.Difference,
		m.OpenedAt,
		m.ClosedAt,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, oneOpenSessionIndex) {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to insert session "+m.SessionID, err)
	}
	return nil
}

func scanSession(row pgx.Row) (*models.POSSession, error) {
	var m models.POSSession
	err := row.Scan(
		&m.SessionID,
		&m.TenantID,
		&m.CashRegisterID,
		&m.OpenedByUserID,
		&m.Status,
		&m.OpeningAmount,
		&m.ClosingAmount,
		&m.ExpectedAmount,
		&m.Difference,
		&m.OpenedAt,
		&m.ClosedAt,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindSessionByID retrieves a session by its ID within a tenant.
func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, tenantID, sessionID string) (*domain.POSSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM pos_sessions WHERE session_id = $1 AND tenant_id = $2;`

	m, err := scanSession(r.Pool.QueryRow(ctx, query, sessionID, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find session by ID "+sessionID, err)
	}

	session := mapping.ToDomainSession(*m)
	return &session, nil
}

// FindOpenSessionByUser returns the user's OPEN session, or nil when none
// exists. A user can have at most one open session at a time in practice,
// but if data says otherwise the most recent one wins.
func (r *PgxSessionRepository) FindOpenSessionByUser(ctx context.Context, tenantID, userID string) (*domain.POSSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM pos_sessions
		WHERE tenant_id = $1 AND opened_by_user_id = $2 AND status = 'OPEN'
		ORDER BY opened_at DESC
		LIMIT 1;
	`
	m, err := scanSession(r.Pool.QueryRow(ctx, query, tenantID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find open session for user "+userID, err)
	}

	session := mapping.ToDomainSession(*m)
	return &session, nil
}

// CloseSession performs the atomic conditional close. The WHERE clause keys
// on status = 'OPEN': of two racing closes only one affects a row, the other
// observes ErrInvalidState. A follow-up existence check separates "already
// closed" from "never existed".
func (r *PgxSessionRepository) CloseSession(ctx context.Context, tenantID, sessionID string, close portsrepo.SessionClose) error {
	query := `
		UPDATE pos_sessions
		SET status = 'CLOSED',
		    closing_amount = $3,
		    expected_amount = $4,
		    difference = $5,
		    closed_at = $6,
		    notes = CASE WHEN $7 = '' THEN notes ELSE $7 END,
		    last_updated_at = $6,
		    last_updated_by = $8
		WHERE session_id = $1 AND tenant_id = $2 AND status = 'OPEN';
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		sessionID,
		tenantID,
		close.ClosingAmount,
		close.ExpectedAmount,
		close.Difference,
		close.ClosedAt,
		close.Notes,
		close.ClosedByUserID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close session "+sessionID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return r.resolveSessionState(ctx, tenantID, sessionID)
	}

	return nil
}

// ListSessions retrieves a filtered page of sessions using token-based
// pagination ordered by (opened_at DESC, session_id DESC).
func (r *PgxSessionRepository) ListSessions(ctx context.Context, tenantID string, filter portsrepo.SessionFilter, limit int, nextToken *string) ([]domain.POSSession, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + sessionColumns + ` FROM pos_sessions WHERE tenant_id = $1`
	args := []interface{}{tenantID}

	addArg := func(clause string, value interface{}) {
		args = append(args, value)
		query += " AND " + clause + "$" + strconv.Itoa(len(args))
	}

	if filter.CashRegisterID != nil {
		addArg("cash_register_id = ", *filter.CashRegisterID)
	}
	if filter.Status != nil {
		addArg("status = ", string(*filter.Status))
	}
	if filter.OpenedByUserID != nil {
		addArg("opened_by_user_id = ", *filter.OpenedByUserID)
	}
	if filter.From != nil {
		addArg("opened_at >= ", *filter.From)
	}
	if filter.To != nil {
		addArg("opened_at <= ", *filter.To)
	}

	if nextToken != nil && *nextToken != "" {
		lastOpenedAt, lastSessionID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		// Tuple comparison keeps the cursor stable across equal timestamps.
		args = append(args, lastOpenedAt, lastSessionID)
		query += " AND (opened_at, session_id) < ($" + strconv.Itoa(len(args)-1) + ", $" + strconv.Itoa(len(args)) + ")"
	}

	args = append(args, fetchLimit)
	query += " ORDER BY opened_at DESC, session_id DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query sessions for tenant "+tenantID, err)
	}
	defer rows.Close()

	modelSessions := make([]models.POSSession, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanSession(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan session row for tenant "+tenantID, scanErr)
		}
		modelSessions = append(modelSessions, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating session rows for tenant "+tenantID, err)
	}

	var nextTokenVal *string
	results := modelSessions
	if len(modelSessions) > limit {
		last := modelSessions[limit-1]
		token := pagination.EncodeToken(last.OpenedAt, last.SessionID)
		nextTokenVal = &token
		results = modelSessions[:limit]
	}

	return mapping.ToDomainSessionSlice(results), nextTokenVal, nil
}
