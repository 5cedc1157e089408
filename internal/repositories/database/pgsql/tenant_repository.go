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

type PgxTenantRepository struct {
	BaseRepository
}

// NewPgxTenantRepository creates a new repository for tenant data.
func NewPgxTenantRepository(pool *pgxpool.Pool) portsrepo.TenantRepositoryFacade {
	return &PgxTenantRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TenantRepositoryFacade = (*PgxTenantRepository)(nil)

const tenantColumns = `
	tenant_id, name, description, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

// SaveTenant inserts a new tenant.
func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	query := `
		INSERT INTO tenants (` + tenantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		tenant.TenantID,
		tenant.Name,
		tenant.Description,
		tenant.IsActive,
		tenant.CreatedAt,
		tenant.CreatedBy,
		tenant.LastUpdatedAt,
		tenant.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert tenant "+tenant.TenantID, err)
	}
	return nil
}

func scanTenant(row pgx.Row) (*models.Tenant, error) {
	var m models.Tenant
	err := row.Scan(
		&m.TenantID,
		&m.Name,
		&m.Description,
		&m.IsActive,
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

// FindTenantByID retrieves a tenant by its ID.
func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE tenant_id = $1;`

	m, err := scanTenant(r.Pool.QueryRow(ctx, query, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find tenant by ID "+tenantID, err)
	}

	tenant := mapping.ToDomainTenant(*m)
	return &tenant, nil
}

// ListTenantsByUserID returns the tenants a user belongs to, excluding
// memberships with the REMOVED role.
func (r *PgxTenantRepository) ListTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error) {
	query := `
		SELECT t.tenant_id, t.name, t.description, t.is_active,
		       t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
		FROM tenants t
		JOIN user_tenants ut ON ut.tenant_id = t.tenant_id
		WHERE ut.user_id = $1 AND ut.role <> 'REMOVED'
		ORDER BY t.name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tenants for user "+userID, err)
	}
	defer rows.Close()

	tenants := []domain.Tenant{}
	for rows.Next() {
		m, scanErr := scanTenant(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tenant row for user "+userID, scanErr)
		}
		tenants = append(tenants, mapping.ToDomainTenant(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating tenant rows for user "+userID, err)
	}
	return tenants, nil
}

// AddUserToTenant upserts a membership row, so re-adding a removed user
// restores access with the new role.
func (r *PgxTenantRepository) AddUserToTenant(ctx context.Context, membership domain.UserTenant) error {
	query := `
		INSERT INTO user_tenants (user_id, tenant_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, tenant_id)
		DO UPDATE SET role = EXCLUDED.role;
	`
	_, err := r.Pool.Exec(ctx, query,
		membership.UserID,
		membership.TenantID,
		string(membership.Role),
		membership.JoinedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert membership for user "+membership.UserID, err)
	}
	return nil
}

// FindUserTenantRole returns the membership of a user in a tenant.
func (r *PgxTenantRepository) FindUserTenantRole(ctx context.Context, userID, tenantID string) (*domain.UserTenant, error) {
	query := `
		SELECT ut.user_id, u.name, ut.tenant_id, ut.role, ut.joined_at
		FROM user_tenants ut
		JOIN users u ON u.user_id = ut.user_id
		WHERE ut.user_id = $1 AND ut.tenant_id = $2;
	`
	var m models.UserTenant
	err := r.Pool.QueryRow(ctx, query, userID, tenantID).Scan(
		&m.UserID,
		&m.UserName,
		&m.TenantID,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find membership for user "+userID, err)
	}

	membership := mapping.ToDomainUserTenant(m)
	return &membership, nil
}
