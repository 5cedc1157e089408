package pgsql

import (
	"context"
	"errors"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/apperrors"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	portsrepo "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/repositories"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/models"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// registerCodeIndex is the unique index on (tenant_id, code).
const registerCodeIndex = "cash_registers_tenant_code_key"

type PgxRegisterRepository struct {
	BaseRepository
}

// NewPgxRegisterRepository creates a new repository for cash register data.
func NewPgxRegisterRepository(pool *pgxpool.Pool) portsrepo.RegisterRepositoryFacade {
	return &PgxRegisterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RegisterRepositoryFacade = (*PgxRegisterRepository)(nil)

const registerColumns = `
	cash_register_id, tenant_id, name, code, warehouse_id, status, description,
	created_at, created_by, last_updated_at, last_updated_by
`

// SaveRegister inserts a new cash register.
func (r *PgxRegisterRepository) SaveRegister(ctx context.Context, register domain.CashRegister) error {
	m := mapping.ToModelRegister(register)
	query := `
		INSERT INTO cash_registers (` + registerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CashRegisterID,
		m.TenantID,
		m.Name,
		m.Code,
		m.WarehouseID,
		m.Status,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, registerCodeIndex) {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to insert cash register "+m.CashRegisterID, err)
	}
	return nil
}

func scanRegister(row pgx.Row) (*models.CashRegister, error) {
	var m models.CashRegister
	err := row.Scan(
		&m.CashRegisterID,
		&m.TenantID,
		&m.Name,
		&m.Code,
		&m.WarehouseID,
		&m.Status,
		&m.Description,
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

// FindRegisterByID retrieves a register by its ID within a tenant.
func (r *PgxRegisterRepository) FindRegisterByID(ctx context.Context, tenantID, registerID string) (*domain.CashRegister, error) {
	query := `SELECT ` + registerColumns + ` FROM cash_registers WHERE cash_register_id = $1 AND tenant_id = $2;`

	m, err := scanRegister(r.Pool.QueryRow(ctx, query, registerID, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find cash register by ID "+registerID, err)
	}

	register := mapping.ToDomainRegister(*m)
	return &register, nil
}

// ListRegistersByTenant returns all registers of a tenant ordered by code.
func (r *PgxRegisterRepository) ListRegistersByTenant(ctx context.Context, tenantID string) ([]domain.CashRegister, error) {
	query := `SELECT ` + registerColumns + ` FROM cash_registers WHERE tenant_id = $1 ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cash registers for tenant "+tenantID, err)
	}
	defer rows.Close()

	registers := []models.CashRegister{}
	for rows.Next() {
		m, scanErr := scanRegister(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cash register row for tenant "+tenantID, scanErr)
		}
		registers = append(registers, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating cash register rows for tenant "+tenantID, err)
	}

	return mapping.ToDomainRegisterSlice(registers), nil
}

// UpdateRegister persists name/description/status changes.
func (r *PgxRegisterRepository) UpdateRegister(ctx context.Context, register domain.CashRegister) error {
	m := mapping.ToModelRegister(register)
	query := `
		UPDATE cash_registers
		SET name = $3,
		    description = $4,
		    status = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE cash_register_id = $1 AND tenant_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CashRegisterID,
		m.TenantID,
		m.Name,
		m.Description,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update cash register "+m.CashRegisterID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("cash register " + m.CashRegisterID + " not found for update")
	}
	return nil
}
