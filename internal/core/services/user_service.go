package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/apperrors"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	portsrepo "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/repositories"
	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/dto"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/middleware"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/utils"
	"github.com/google/uuid"
)

// UserService handles business logic related to users and credential checks.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(ur portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &UserService{userRepo: ur}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// CreateUser creates a user with a bcrypt-hashed password.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		AuditFields:  newAuditFields(userID, now),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: username %s is taken", apperrors.ErrConflict, req.Username)
		}
		logger.Error("Failed to save user", slog.String("error", err.Error()), slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User created", slog.String("user_id", user.UserID), slog.String("username", req.Username))
	return &user, nil
}

// GetUserByID returns the user or apperrors.ErrNotFound.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// ListUsers returns a page of users.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.ListUsers(ctx, limit, offset)
}

// UpdateUser applies profile changes. Users can only be updated by
// themselves.
func (s *UserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID != updaterUserID {
		return nil, fmt.Errorf("%w: users can only update themselves", apperrors.ErrForbidden)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = updaterUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Error("Failed to update user", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser soft-deletes a user. Users can only delete themselves.
func (s *UserService) DeleteUser(ctx context.Context, userID string, deleterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID != deleterUserID {
		return fmt.Errorf("%w: users can only delete themselves", apperrors.ErrForbidden)
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, deleterUserID, time.Now()); err != nil {
		logger.Error("Failed to delete user", slog.String("error", err.Error()), slog.String("user_id", userID))
		return err
	}
	logger.Info("User deleted", slog.String("user_id", userID))
	return nil
}

// AuthenticateUser verifies username and password. Unknown usernames and bad
// passwords both yield ErrUnauthorized so callers cannot probe for accounts.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to look up user for login", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn("Login failed, bad password", slog.String("username", username))
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// FindOrCreateGoogleUser provisions a user from a verified Google identity
// on first sign-in. An existing user with a matching email (username) is
// linked rather than duplicated.
func (s *UserService) FindOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByGoogleID(ctx, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to look up user by Google ID", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find google user: %w", err)
	}

	// Try linking an existing account by email.
	user, err = s.userRepo.FindUserByUsername(ctx, info.Email)
	if err == nil {
		user.GoogleID = &info.ID
		user.LastUpdatedAt = time.Now()
		user.LastUpdatedBy = user.UserID
		if updErr := s.userRepo.UpdateUser(ctx, *user); updErr != nil {
			logger.Error("Failed to link Google ID to existing user", slog.String("error", updErr.Error()), slog.String("user_id", user.UserID))
			return nil, fmt.Errorf("failed to link google account: %w", updErr)
		}
		logger.Info("Linked Google account to existing user", slog.String("user_id", user.UserID))
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	now := time.Now()
	userID := uuid.NewString()
	newUser := domain.User{
		UserID:      userID,
		Username:    info.Email,
		Name:        info.Name,
		GoogleID:    &info.ID,
		AuditFields: newAuditFields(userID, now),
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		logger.Error("Failed to provision Google user", slog.String("error", err.Error()), slog.String("email", info.Email))
		return nil, fmt.Errorf("failed to create google user: %w", err)
	}

	logger.Info("Provisioned user from Google sign-in", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}

// UpdateUserRefreshToken stores the hash of a newly issued refresh token.
func (s *UserService) UpdateUserRefreshToken(ctx context.Context, userID string, tokenHash string, expiryTime time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, tokenHash, &expiryTime)
}

// ClearUserRefreshToken removes the stored refresh token on logout.
func (s *UserService) ClearUserRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, "", nil)
}
