package pgsql

import (
	"context"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/apperrors"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	portsrepo "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/repositories"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/models"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxMovementRepository struct {
	BaseRepository
}

// NewPgxMovementRepository creates a new repository for the session cash
// ledger.
func NewPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryFacade {
	return &PgxMovementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MovementRepositoryFacade = (*PgxMovementRepository)(nil)

// AppendMovement inserts the movement in a single statement conditioned on
// its session still being OPEN. INSERT ... SELECT keeps the status check and
// the write atomic, so a movement can never land on a session a concurrent
// close has already finalized. ErrNotFound when the session does not exist,
// ErrInvalidState when it exists but is closed.
func (r *PgxMovementRepository) AppendMovement(ctx context.Context, tenantID string, movement domain.CashMovement) error {
	query := `
		INSERT INTO cash_movements (movement_id, session_id, movement_type, amount, reason, created_at, created_by)
		SELECT $1, s.session_id, $3, $4, $5, $6, $7
		FROM pos_sessions s
		WHERE s.session_id = $2 AND s.tenant_id = $8 AND s.status = 'OPEN';
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		movement.MovementID,
		movement.SessionID,
		string(movement.Type),
		movement.Amount,
		movement.Reason,
		movement.CreatedAt,
		movement.CreatedBy,
		tenantID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert cash movement for session "+movement.SessionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Zero rows means the session is missing or no longer OPEN. A
		// follow-up existence check separates the two.
		return r.resolveSessionState(ctx, tenantID, movement.SessionID)
	}
	return nil
}

// ListMovementsBySession retrieves all movements of a session in insertion
// order.
func (r *PgxMovementRepository) ListMovementsBySession(ctx context.Context, sessionID string) ([]domain.CashMovement, error) {
	query := `
		SELECT movement_id, session_id, movement_type, amount, reason, created_at, created_by
		FROM cash_movements
		WHERE session_id = $1
		ORDER BY created_at, movement_id;
	`
	rows, err := r.Pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query movements for session "+sessionID, err)
	}
	defer rows.Close()

	movements := []models.CashMovement{}
	for rows.Next() {
		var m models.CashMovement
		if err := rows.Scan(
			&m.MovementID,
			&m.SessionID,
			&m.Type,
			&m.Amount,
			&m.Reason,
			&m.CreatedAt,
			&m.CreatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan movement row for session "+sessionID, err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating movement rows for session "+sessionID, err)
	}

	return mapping.ToDomainMovementSlice(movements), nil
}

// SumMovementsBySession returns the CASH_IN and CASH_OUT totals for a
// session. Sums are computed from rows on every call; no counters are kept
// on the session.
func (r *PgxMovementRepository) SumMovementsBySession(ctx context.Context, sessionID string) (domain.MovementAggregate, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE movement_type = 'CASH_IN'), 0),
			COALESCE(SUM(amount) FILTER (WHERE movement_type = 'CASH_OUT'), 0)
		FROM cash_movements
		WHERE session_id = $1;
	`
	var cashIn, cashOut decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, sessionID).Scan(&cashIn, &cashOut); err != nil {
		return domain.MovementAggregate{}, apperrors.NewAppError(500, "failed to sum movements for session "+sessionID, err)
	}
	return domain.MovementAggregate{CashIn: cashIn, CashOut: cashOut}, nil
}
