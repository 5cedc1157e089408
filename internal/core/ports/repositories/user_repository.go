package repositories

import (
	"context"
	"time"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for users.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error

	// MarkUserDeleted soft-deletes the user.
	MarkUserDeleted(ctx context.Context, userID string, deletedByUserID string, now time.Time) error

	// UpdateRefreshToken stores the refresh token hash and expiry; empty
	// hash clears the stored token (logout).
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiryTime *time.Time) error
}

// AuditLogRepositoryFacade records operational audit events. Implementations
// must be safe to call best-effort; callers ignore failures after logging.
type AuditLogRepositoryFacade interface {
	RecordAuditLog(ctx context.Context, entry domain.AuditLog) error
}
