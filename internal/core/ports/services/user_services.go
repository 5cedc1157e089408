package services

import (
	"context"
	"time"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/dto"
)

// UserSvcFacade manages users and credential checks.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error

	// AuthenticateUser verifies username/password and returns the user or
	// ErrUnauthorized.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// FindOrCreateGoogleUser provisions a user from a verified Google
	// identity on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error)

	// UpdateUserRefreshToken stores the hash of a newly issued refresh
	// token; ClearUserRefreshToken removes it on logout.
	UpdateUserRefreshToken(ctx context.Context, userID string, tokenHash string, expiryTime time.Time) error
	ClearUserRefreshToken(ctx context.Context, userID string) error
}
