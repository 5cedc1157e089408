package services_test

import (
	"context"
	"testing"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/apperrors"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RegisterServiceTestSuite struct {
	suite.Suite
	mockRegisterRepo *MockRegisterRepository
	mockAuditRepo    *MockAuditLogRepository
	mockAuthorizer   *MockTenantAuthorizer
	service          portssvc.RegisterSvcFacade
	tenantID         string
	userID           string
}

func (suite *RegisterServiceTestSuite) SetupTest() {
	suite.mockRegisterRepo = new(MockRegisterRepository)
	suite.mockAuditRepo = new(MockAuditLogRepository)
	suite.mockAuthorizer = new(MockTenantAuthorizer)
	suite.service = services.NewRegisterService(
		suite.mockRegisterRepo,
		suite.mockAuditRepo,
		suite.mockAuthorizer,
	)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *RegisterServiceTestSuite) TestCreateRegister_Success() {
	ctx := context.Background()
	req := dto.CreateRegisterRequest{
		Name:        "Front Desk",
		Code:        "fd01",
		WarehouseID: uuid.NewString(),
		Description: "Main entrance register",
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.tenantID, domain.RoleAdmin).Return(nil).Once()
	suite.mockRegisterRepo.On("SaveRegister", mock.Anything, mock.AnythingOfType("domain.CashRegister")).Return(nil).Once()
	suite.mockAuditRepo.On("RecordAuditLog", mock.Anything, mock.AnythingOfType("domain.AuditLog")).Return(nil)

	register, err := suite.service.CreateRegister(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(register)
	suite.NotEmpty(register.CashRegisterID)
	suite.Equal("FD01", register.Code)
	suite.Equal(domain.RegisterOpen, register.Status)
	suite.Equal(suite.tenantID, register.TenantID)
	suite.Equal(suite.userID, register.CreatedBy)

	suite.mockRegisterRepo.AssertExpectations(suite.T())
}

func (suite *RegisterServiceTestSuite) TestCreateRegister_NonAdminForbidden() {
	ctx := context.Background()
	req := dto.CreateRegisterRequest{Name: "Kiosk", Code: "K1", WarehouseID: uuid.NewString()}

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.tenantID, domain.RoleAdmin).Return(apperrors.ErrForbidden).Once()

	register, err := suite.service.CreateRegister(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(register)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "SaveRegister")
}

func (suite *RegisterServiceTestSuite) TestCreateRegister_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateRegisterRequest{Name: "Front Desk", Code: "FD01", WarehouseID: uuid.NewString()}

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.tenantID, domain.RoleAdmin).Return(nil).Once()
	suite.mockRegisterRepo.On("SaveRegister", mock.Anything, mock.AnythingOfType("domain.CashRegister")).Return(apperrors.ErrConflict).Once()

	register, err := suite.service.CreateRegister(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(register)
}

func (suite *RegisterServiceTestSuite) TestUpdateRegister_PartialPatch() {
	ctx := context.Background()
	existing := &domain.CashRegister{
		CashRegisterID: uuid.NewString(),
		TenantID:       suite.tenantID,
		Name:           "Front Desk",
		Code:           "FD01",
		WarehouseID:    uuid.NewString(),
		Status:         domain.RegisterOpen,
		Description:    "Main entrance register",
	}
	suspended := domain.RegisterSuspended
	req := dto.UpdateRegisterRequest{Status: &suspended}

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.tenantID, domain.RoleAdmin).Return(nil).Once()
	suite.mockRegisterRepo.On("FindRegisterByID", mock.Anything, suite.tenantID, existing.CashRegisterID).Return(existing, nil).Once()
	suite.mockRegisterRepo.On("UpdateRegister", mock.Anything, mock.MatchedBy(func(r domain.CashRegister) bool {
		return r.Status == domain.RegisterSuspended && r.Name == "Front Desk" && r.Code == "FD01"
	})).Return(nil).Once()
	suite.mockAuditRepo.On("RecordAuditLog", mock.Anything, mock.AnythingOfType("domain.AuditLog")).Return(nil)

	updated, err := suite.service.UpdateRegister(ctx, suite.tenantID, existing.CashRegisterID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(domain.RegisterSuspended, updated.Status)
	suite.Equal("Main entrance register", updated.Description)
	suite.Equal(suite.userID, updated.LastUpdatedBy)

	suite.mockRegisterRepo.AssertExpectations(suite.T())
}

func (suite *RegisterServiceTestSuite) TestUpdateRegister_NotFound() {
	ctx := context.Background()
	registerID := uuid.NewString()
	name := "Renamed"
	req := dto.UpdateRegisterRequest{Name: &name}

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.tenantID, domain.RoleAdmin).Return(nil).Once()
	suite.mockRegisterRepo.On("FindRegisterByID", mock.Anything, suite.tenantID, registerID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateRegister(ctx, suite.tenantID, registerID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "UpdateRegister")
}

func (suite *RegisterServiceTestSuite) TestListRegisters() {
	ctx := context.Background()
	registers := []domain.CashRegister{
		{CashRegisterID: uuid.NewString(), TenantID: suite.tenantID, Code: "FD01"},
		{CashRegisterID: uuid.NewString(), TenantID: suite.tenantID, Code: "WH02"},
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.tenantID, domain.RoleEmployee).Return(nil).Once()
	suite.mockRegisterRepo.On("ListRegistersByTenant", mock.Anything, suite.tenantID).Return(registers, nil).Once()

	result, err := suite.service.ListRegisters(ctx, suite.tenantID, suite.userID)

	suite.Require().NoError(err)
	suite.Len(result, 2)
	suite.Equal("FD01", result[0].Code)
}

func TestRegisterService(t *testing.T) {
	suite.Run(t, new(RegisterServiceTestSuite))
}
