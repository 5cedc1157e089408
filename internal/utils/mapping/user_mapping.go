package mapping

import (
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/models"
)

// ToDomainUser converts a user row to its domain representation, flattening
// the sql.Null* columns.
func ToDomainUser(m models.User) domain.User {
	u := domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		DeletedAt:    m.DeletedAt,
	}
	if m.RefreshTokenHash.Valid {
		u.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		u.RefreshTokenExpiryTime = &t
	}
	if m.GoogleID.Valid {
		g := m.GoogleID.String
		u.GoogleID = &g
	}
	return u
}

// ToDomainTenant converts a tenant row to its domain representation.
func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:    m.TenantID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUserTenant converts a membership row to its domain representation.
func ToDomainUserTenant(m models.UserTenant) domain.UserTenant {
	return domain.UserTenant{
		UserID:   m.UserID,
		UserName: m.UserName,
		TenantID: m.TenantID,
		Role:     domain.UserTenantRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}
