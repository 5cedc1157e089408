package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	portsrepo "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/repositories"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/middleware"
	"github.com/google/uuid"
)

// recordAudit writes an audit entry best-effort: failures are logged and
// never propagated, so a denied audit insert cannot abort the primary
// operation it documents.
func recordAudit(ctx context.Context, repo portsrepo.AuditLogRepositoryFacade, tenantID, userID, action, entityType, entityID string, detail map[string]any) {
	logger := middleware.GetLoggerFromCtx(ctx)

	detailJSON := "{}"
	if detail != nil {
		if b, err := json.Marshal(detail); err == nil {
			detailJSON = string(b)
		}
	}

	entry := domain.AuditLog{
		AuditLogID: uuid.NewString(),
		TenantID:   tenantID,
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detailJSON,
		CreatedAt:  time.Now(),
	}
	if err := repo.RecordAuditLog(ctx, entry); err != nil {
		logger.Warn("Failed to record audit log entry",
			slog.String("error", err.Error()),
			slog.String("action", action),
			slog.String("entity_id", entityID))
	}
}

// newAuditFields stamps creation metadata for a new entity.
func newAuditFields(userID string, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}
