package repositories

import (
	"context"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
)

// RegisterRepositoryFacade defines persistence operations for cash registers.
type RegisterRepositoryFacade interface {
	// SaveRegister inserts a new register. A duplicate (tenant, code) pair
	// returns apperrors.ErrConflict.
	SaveRegister(ctx context.Context, register domain.CashRegister) error

	// FindRegisterByID returns the register or apperrors.ErrNotFound. The
	// lookup is tenant-scoped.
	FindRegisterByID(ctx context.Context, tenantID, registerID string) (*domain.CashRegister, error)

	// ListRegistersByTenant returns all registers of a tenant.
	ListRegistersByTenant(ctx context.Context, tenantID string) ([]domain.CashRegister, error)

	// UpdateRegister persists name/description/status changes.
	UpdateRegister(ctx context.Context, register domain.CashRegister) error
}
