package mapping

import (
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/models"
)

// ToModelRegister converts a domain cash register to its row representation.
func ToModelRegister(r domain.CashRegister) models.CashRegister {
	return models.CashRegister{
		CashRegisterID: r.CashRegisterID,
		TenantID:       r.TenantID,
		Name:           r.Name,
		Code:           r.Code,
		WarehouseID:    r.WarehouseID,
		Status:         models.RegisterStatus(r.Status),
		Description:    r.Description,
		AuditFields:    ToModelAuditFields(r.AuditFields),
	}
}

// ToDomainRegister converts a cash register row to its domain representation.
func ToDomainRegister(m models.CashRegister) domain.CashRegister {
	return domain.CashRegister{
		CashRegisterID: m.CashRegisterID,
		TenantID:       m.TenantID,
		Name:           m.Name,
		Code:           m.Code,
		WarehouseID:    m.WarehouseID,
		Status:         domain.RegisterStatus(m.Status),
		Description:    m.Description,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRegisterSlice converts a slice of cash register rows.
func ToDomainRegisterSlice(ms []models.CashRegister) []domain.CashRegister {
	out := make([]domain.CashRegister, len(ms))
	for i, m := range ms {
		out[i] = ToDomainRegister(m)
	}
	return out
}
