package pgsql

import (
	"context"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/apperrors"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	portsrepo "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

// NewPgxAuditLogRepository creates a new repository for audit log entries.
func NewPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepositoryFacade {
	return &PgxAuditLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditLogRepositoryFacade = (*PgxAuditLogRepository)(nil)

// RecordAuditLog inserts an audit entry. Callers treat failures as
// best-effort and must not abort the primary operation.
func (r *PgxAuditLogRepository) RecordAuditLog(ctx context.Context, entry domain.AuditLog) error {
	query := `
		INSERT INTO audit_logs (audit_log_id, tenant_id, user_id, action, entity_type, entity_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.AuditLogID,
		entry.TenantID,
		entry.UserID,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.Detail,
		entry.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit log entry", err)
	}
	return nil
}
