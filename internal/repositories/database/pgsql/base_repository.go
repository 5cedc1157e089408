package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint
// violations.
const uniqueViolationCode = "23505"

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction. Safe to defer after a successful commit.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// resolveSessionState disambiguates a zero-row conditional write against a
// session: ErrNotFound when the session does not exist in the tenant,
// ErrInvalidState when it exists but is no longer OPEN.
func (r *BaseRepository) resolveSessionState(ctx context.Context, tenantID, sessionID string) error {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM pos_sessions WHERE session_id = $1 AND tenant_id = $2);`
	if err := r.Pool.QueryRow(ctx, query, sessionID, tenantID).Scan(&exists); err != nil {
		return apperrors.NewAppError(500, "failed to check session existence "+sessionID, err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrInvalidState
}

// isUniqueViolation reports whether err is a unique constraint violation,
// optionally matching a specific constraint name.
func isUniqueViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return false
	}
	return constraintName == "" || pgErr.ConstraintName == constraintName
}
