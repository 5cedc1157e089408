package services_test

import (
	"context"
	"time"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	portsrepo "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/repositories"
	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock SessionRepository ---

type MockSessionRepository struct {
	mock.Mock
}

var _ portsrepo.SessionRepositoryFacade = (*MockSessionRepository)(nil)

func (m *MockSessionRepository) CreateSession(ctx context.Context, session domain.POSSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindSessionByID(ctx context.Context, tenantID, sessionID string) (*domain.POSSession, error) {
	args := m.Called(ctx, tenantID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSSession), args.Error(1)
}

func (m *MockSessionRepository) FindOpenSessionByUser(ctx context.Context, tenantID, userID string) (*domain.POSSession, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSSession), args.Error(1)
}

func (m *MockSessionRepository) CloseSession(ctx context.Context, tenantID, sessionID string, close portsrepo.SessionClose) error {
	args := m.Called(ctx, tenantID, sessionID, close)
	return args.Error(0)
}

func (m *MockSessionRepository) ListSessions(ctx context.Context, tenantID string, filter portsrepo.SessionFilter, limit int, nextToken *string) ([]domain.POSSession, *string, error) {
	args := m.Called(ctx, tenantID, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.POSSession), returnedNextToken, args.Error(2)
}

// --- Mock MovementRepository ---

type MockMovementRepository struct {
	mock.Mock
}

var _ portsrepo.MovementRepositoryFacade = (*MockMovementRepository)(nil)

func (m *MockMovementRepository) AppendMovement(ctx context.Context, tenantID string, movement domain.CashMovement) error {
	args := m.Called(ctx, tenantID, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) ListMovementsBySession(ctx context.Context, sessionID string) ([]domain.CashMovement, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashMovement), args.Error(1)
}

func (m *MockMovementRepository) SumMovementsBySession(ctx context.Context, sessionID string) (domain.MovementAggregate, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.MovementAggregate), args.Error(1)
}

// --- Mock SaleRepository ---

type MockSaleRepository struct {
	mock.Mock
}

var _ portsrepo.SaleRepositoryFacade = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) AppendSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) AggregateSalesBySession(ctx context.Context, sessionID string) (domain.SaleAggregate, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.SaleAggregate), args.Error(1)
}

// --- Mock RegisterRepository ---

type MockRegisterRepository struct {
	mock.Mock
}

var _ portsrepo.RegisterRepositoryFacade = (*MockRegisterRepository)(nil)

func (m *MockRegisterRepository) SaveRegister(ctx context.Context, register domain.CashRegister) error {
	args := m.Called(ctx, register)
	return args.Error(0)
}

func (m *MockRegisterRepository) FindRegisterByID(ctx context.Context, tenantID, registerID string) (*domain.CashRegister, error) {
	args := m.Called(ctx, tenantID, registerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashRegister), args.Error(1)
}

func (m *MockRegisterRepository) ListRegistersByTenant(ctx context.Context, tenantID string) ([]domain.CashRegister, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashRegister), args.Error(1)
}

func (m *MockRegisterRepository) UpdateRegister(ctx context.Context, register domain.CashRegister) error {
	args := m.Called(ctx, register)
	return args.Error(0)
}

// --- Mock AuditLogRepository ---

type MockAuditLogRepository struct {
	mock.Mock
}

var _ portsrepo.AuditLogRepositoryFacade = (*MockAuditLogRepository)(nil)

func (m *MockAuditLogRepository) RecordAuditLog(ctx context.Context, entry domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock TenantRepository ---

type MockTenantRepository struct {
	mock.Mock
}

var _ portsrepo.TenantRepositoryFacade = (*MockTenantRepository)(nil)

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) ListTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) AddUserToTenant(ctx context.Context, membership domain.UserTenant) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockTenantRepository) FindUserTenantRole(ctx context.Context, userID, tenantID string) (*domain.UserTenant, error) {
	args := m.Called(ctx, userID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserTenant), args.Error(1)
}

// --- Mock TenantAuthorizer ---

type MockTenantAuthorizer struct {
	mock.Mock
}

var _ portssvc.TenantAuthorizerSvc = (*MockTenantAuthorizer)(nil)

func (m *MockTenantAuthorizer) AuthorizeUserAction(ctx context.Context, userID, tenantID string, requiredRole domain.UserTenantRole) error {
	args := m.Called(ctx, userID, tenantID, requiredRole)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedByUserID string, now time.Time) error {
	args := m.Called(ctx, userID, deletedByUserID, now)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiryTime *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiryTime)
	return args.Error(0)
}
