package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/apperrors"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockTenantRepo *MockTenantRepository
	service        portssvc.TenantSvcFacade
	tenantID       string
	userID         string
}

func (suite *TenantServiceTestSuite) SetupTest() {
	suite.mockTenantRepo = new(MockTenantRepository)
	suite.service = services.NewTenantService(suite.mockTenantRepo)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *TenantServiceTestSuite) membershipWith(role domain.UserTenantRole) *domain.UserTenant {
	return &domain.UserTenant{
		UserID:   suite.userID,
		TenantID: suite.tenantID,
		Role:     role,
		JoinedAt: time.Now().Add(-24 * time.Hour),
	}
}

func (suite *TenantServiceTestSuite) TestAuthorizeUserAction_RoleMatrix() {
	ctx := context.Background()
	cases := []struct {
		name     string
		actual   domain.UserTenantRole
		required domain.UserTenantRole
		allowed  bool
	}{
		{"admin satisfies admin", domain.RoleAdmin, domain.RoleAdmin, true},
		{"admin satisfies employee", domain.RoleAdmin, domain.RoleEmployee, true},
		{"manager satisfies employee", domain.RoleManager, domain.RoleEmployee, true},
		{"manager satisfies manager", domain.RoleManager, domain.RoleManager, true},
		{"manager does not satisfy admin", domain.RoleManager, domain.RoleAdmin, false},
		{"employee does not satisfy manager", domain.RoleEmployee, domain.RoleManager, false},
		{"employee satisfies employee", domain.RoleEmployee, domain.RoleEmployee, true},
		{"removed satisfies nothing", domain.RoleRemoved, domain.RoleEmployee, false},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			mockRepo := new(MockTenantRepository)
			svc := services.NewTenantService(mockRepo)
			mockRepo.On("FindUserTenantRole", mock.Anything, suite.userID, suite.tenantID).Return(&domain.UserTenant{
				UserID:   suite.userID,
				TenantID: suite.tenantID,
				Role:     tc.actual,
			}, nil).Once()

			err := svc.AuthorizeUserAction(ctx, suite.userID, suite.tenantID, tc.required)

			if tc.allowed {
				suite.NoError(err)
			} else {
				suite.ErrorIs(err, apperrors.ErrForbidden)
			}
			mockRepo.AssertExpectations(suite.T())
		})
	}
}

func (suite *TenantServiceTestSuite) TestAuthorizeUserAction_NotAMember() {
	ctx := context.Background()

	suite.mockTenantRepo.On("FindUserTenantRole", mock.Anything, suite.userID, suite.tenantID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AuthorizeUserAction(ctx, suite.userID, suite.tenantID, domain.RoleEmployee)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TenantServiceTestSuite) TestCreateTenant_CreatorBecomesAdmin() {
	ctx := context.Background()
	req := dto.CreateTenantRequest{Name: "Corner Store", Description: "Neighborhood shop"}

	suite.mockTenantRepo.On("SaveTenant", mock.Anything, mock.AnythingOfType("domain.Tenant")).Return(nil).Once()
	suite.mockTenantRepo.On("AddUserToTenant", mock.Anything, mock.MatchedBy(func(m domain.UserTenant) bool {
		return m.UserID == suite.userID && m.Role == domain.RoleAdmin
	})).Return(nil).Once()

	tenant, err := suite.service.CreateTenant(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(tenant)
	suite.NotEmpty(tenant.TenantID)
	suite.Equal("Corner Store", tenant.Name)
	suite.True(tenant.IsActive)

	suite.mockTenantRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestAddUserToTenant_RequiresAdmin() {
	ctx := context.Background()
	targetUserID := uuid.NewString()

	suite.mockTenantRepo.On("FindUserTenantRole", mock.Anything, suite.userID, suite.tenantID).Return(suite.membershipWith(domain.RoleManager), nil).Once()

	err := suite.service.AddUserToTenant(ctx, suite.userID, targetUserID, suite.tenantID, domain.RoleEmployee)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTenantRepo.AssertNotCalled(suite.T(), "AddUserToTenant")
}

func (suite *TenantServiceTestSuite) TestAddUserToTenant_AdminAddsMember() {
	ctx := context.Background()
	targetUserID := uuid.NewString()

	suite.mockTenantRepo.On("FindUserTenantRole", mock.Anything, suite.userID, suite.tenantID).Return(suite.membershipWith(domain.RoleAdmin), nil).Once()
	suite.mockTenantRepo.On("AddUserToTenant", mock.Anything, mock.MatchedBy(func(m domain.UserTenant) bool {
		return m.UserID == targetUserID && m.TenantID == suite.tenantID && m.Role == domain.RoleEmployee
	})).Return(nil).Once()

	err := suite.service.AddUserToTenant(ctx, suite.userID, targetUserID, suite.tenantID, domain.RoleEmployee)

	suite.Require().NoError(err)
	suite.mockTenantRepo.AssertExpectations(suite.T())
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}
