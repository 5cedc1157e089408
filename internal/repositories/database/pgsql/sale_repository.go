package pgsql

import (
	"context"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/apperrors"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	portsrepo "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxSaleRepository struct {
	BaseRepository
}

// NewPgxSaleRepository creates a new repository for sale attribution rows.
func NewPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

// AppendSale inserts the sale conditioned on its session still being OPEN,
// in the same atomic INSERT ... SELECT shape as cash movements. A sale
// against an unknown session gets ErrNotFound; one racing a concurrent
// close loses and gets ErrInvalidState.
func (r *PgxSaleRepository) AppendSale(ctx context.Context, sale domain.Sale) error {
	query := `
		INSERT INTO pos_sales (sale_id, tenant_id, session_id, payment_method, amount, reference, created_at, created_by)
		SELECT $1, s.tenant_id, s.session_id, $4, $5, $6, $7, $8
		FROM pos_sessions s
		WHERE s.session_id = $2 AND s.tenant_id = $3 AND s.status = 'OPEN';
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		sale.SaleID,
		sale.SessionID,
		sale.TenantID,
		string(sale.PaymentMethod),
		sale.Amount,
		sale.Reference,
		sale.CreatedAt,
		sale.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert sale for session "+sale.SessionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.resolveSessionState(ctx, sale.TenantID, sale.SessionID)
	}
	return nil
}

// AggregateSalesBySession returns per-payment-method totals and transaction
// count for a session. Read-only; report generation never mutates sales.
func (r *PgxSaleRepository) AggregateSalesBySession(ctx context.Context, sessionID string) (domain.SaleAggregate, error) {
	query := `
		SELECT payment_method, COALESCE(SUM(amount), 0), COUNT(*)
		FROM pos_sales
		WHERE session_id = $1
		GROUP BY payment_method;
	`
	rows, err := r.Pool.Query(ctx, query, sessionID)
	if err != nil {
		return domain.SaleAggregate{}, apperrors.NewAppError(500, "failed to aggregate sales for session "+sessionID, err)
	}
	defer rows.Close()

	agg := domain.SaleAggregate{ByMethod: map[domain.PaymentMethod]decimal.Decimal{}}
	for rows.Next() {
		var method string
		var amount decimal.Decimal
		var count int64
		if err := rows.Scan(&method, &amount, &count); err != nil {
			return domain.SaleAggregate{}, apperrors.NewAppError(500, "failed to scan sale aggregate row for session "+sessionID, err)
		}
		agg.ByMethod[domain.PaymentMethod(method)] = amount
		agg.Count += count
	}
	if err := rows.Err(); err != nil {
		return domain.SaleAggregate{}, apperrors.NewAppError(500, "error iterating sale aggregate rows for session "+sessionID, err)
	}

	return agg, nil
}
