package pgsql

import (
	portsrepo "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     NewPgxUserRepository(dbPool),
		TenantRepo:   NewPgxTenantRepository(dbPool),
		RegisterRepo: NewPgxRegisterRepository(dbPool),
		SessionRepo:  NewPgxSessionRepository(dbPool),
		MovementRepo: NewPgxMovementRepository(dbPool),
		SaleRepo:     NewPgxSaleRepository(dbPool),
		AuditLogRepo: NewPgxAuditLogRepository(dbPool),
	}
}
