package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/apperrors"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mockSessionRepo  *MockSessionRepository
	mockMovementRepo *MockMovementRepository
	mockSaleRepo     *MockSaleRepository
	mockAuthorizer   *MockTenantAuthorizer
	service          portssvc.ReportSvcFacade
	tenantID         string
	userID           string
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockSessionRepo = new(MockSessionRepository)
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockAuthorizer = new(MockTenantAuthorizer)
	suite.service = services.NewReportService(
		suite.mockSessionRepo,
		suite.mockMovementRepo,
		suite.mockSaleRepo,
		suite.mockAuthorizer,
	)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *ReportServiceTestSuite) stubAggregates(sessionID string) {
	suite.mockSaleRepo.On("AggregateSalesBySession", mock.Anything, sessionID).Return(domain.SaleAggregate{
		ByMethod: map[domain.PaymentMethod]decimal.Decimal{
			domain.PaymentCash: decimal.NewFromInt(300),
			domain.PaymentCard: decimal.NewFromInt(450),
		},
		Count: 9,
	}, nil)
	suite.mockMovementRepo.On("SumMovementsBySession", mock.Anything, sessionID).Return(domain.MovementAggregate{
		CashIn:  decimal.NewFromInt(100),
		CashOut: decimal.NewFromInt(40),
	}, nil)
}

func (suite *ReportServiceTestSuite) TestGenerateXReport_OpenSession() {
	ctx := context.Background()
	session := &domain.POSSession{
		SessionID:      uuid.NewString(),
		TenantID:       suite.tenantID,
		CashRegisterID: uuid.NewString(),
		Status:         domain.SessionOpen,
		OpeningAmount:  decimal.NewFromInt(200),
		OpenedAt:       time.Now().Add(-2 * time.Hour),
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.tenantID, domain.RoleEmployee).Return(nil)
	suite.mockSessionRepo.On("FindSessionByID", mock.Anything, suite.tenantID, session.SessionID).Return(session, nil)
	suite.stubAggregates(session.SessionID)

	report, err := suite.service.GenerateXReport(ctx, suite.tenantID, session.SessionID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal(domain.ReportX, report.Kind)
	suite.Equal(domain.SessionOpen, report.SessionStatus)
	suite.True(report.TotalSales.Equal(decimal.NewFromInt(750)))
	suite.Equal(int64(9), report.TransactionCount)
	suite.True(report.TotalCashIn.Equal(decimal.NewFromInt(100)))
	suite.True(report.TotalCashOut.Equal(decimal.NewFromInt(40)))
	// 200 opening + 300 cash sales + 100 in - 40 out
	suite.True(report.ExpectedCash.Equal(decimal.NewFromInt(560)))
	suite.Nil(report.ClosingAmount)
	suite.Nil(report.Difference)
	suite.Nil(report.ClosedAt)
}

func (suite *ReportServiceTestSuite) TestGenerateXReport_Repeatable() {
	ctx := context.Background()
	session := &domain.POSSession{
		SessionID:     uuid.NewString(),
		TenantID:      suite.tenantID,
		Status:        domain.SessionOpen,
		OpeningAmount: decimal.NewFromInt(200),
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.tenantID, domain.RoleEmployee).Return(nil)
	suite.mockSessionRepo.On("FindSessionByID", mock.Anything, suite.tenantID, session.SessionID).Return(session, nil)
	suite.stubAggregates(session.SessionID)

	first, err := suite.service.GenerateXReport(ctx, suite.tenantID, session.SessionID, suite.userID)
	suite.Require().NoError(err)
	second, err := suite.service.GenerateXReport(ctx, suite.tenantID, session.SessionID, suite.userID)
	suite.Require().NoError(err)

	suite.True(first.TotalSales.Equal(second.TotalSales))
	suite.True(first.ExpectedCash.Equal(second.ExpectedCash))
	suite.Equal(first.TransactionCount, second.TransactionCount)
}

func (suite *ReportServiceTestSuite) TestGenerateZReport_OpenSessionRejected() {
	ctx := context.Background()
	session := &domain.POSSession{
		SessionID:     uuid.NewString(),
		TenantID:      suite.tenantID,
		Status:        domain.SessionOpen,
		OpeningAmount: decimal.NewFromInt(50),
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.tenantID, domain.RoleManager).Return(nil)
	suite.mockSessionRepo.On("FindSessionByID", mock.Anything, suite.tenantID, session.SessionID).Return(session, nil)
	suite.stubAggregates(session.SessionID)

	report, err := suite.service.GenerateZReport(ctx, suite.tenantID, session.SessionID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.Nil(report)
}

func (suite *ReportServiceTestSuite) TestGenerateZReport_ClosedSession() {
	ctx := context.Background()
	closing := decimal.NewFromInt(555)
	difference := decimal.NewFromInt(-5)
	closedAt := time.Now().Add(-10 * time.Minute)
	session := &domain.POSSession{
		SessionID:     uuid.NewString(),
		TenantID:      suite.tenantID,
		Status:        domain.SessionClosed,
		OpeningAmount: decimal.NewFromInt(200),
		ClosingAmount: &closing,
		Difference:    &difference,
		ClosedAt:      &closedAt,
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.tenantID, domain.RoleManager).Return(nil)
	suite.mockSessionRepo.On("FindSessionByID", mock.Anything, suite.tenantID, session.SessionID).Return(session, nil)
	suite.stubAggregates(session.SessionID)

	report, err := suite.service.GenerateZReport(ctx, suite.tenantID, session.SessionID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal(domain.ReportZ, report.Kind)
	suite.Equal(domain.SessionClosed, report.SessionStatus)
	suite.Require().NotNil(report.ClosingAmount)
	suite.True(report.ClosingAmount.Equal(closing))
	suite.Require().NotNil(report.Difference)
	suite.True(report.Difference.Equal(difference))
	suite.Require().NotNil(report.ClosedAt)
	suite.WithinDuration(closedAt, *report.ClosedAt, time.Second)
}

func (suite *ReportServiceTestSuite) TestGenerateZReport_RequiresManager() {
	ctx := context.Background()
	sessionID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.tenantID, domain.RoleManager).Return(apperrors.ErrForbidden).Once()

	report, err := suite.service.GenerateZReport(ctx, suite.tenantID, sessionID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(report)
	suite.mockSessionRepo.AssertNotCalled(suite.T(), "FindSessionByID")
}

func TestReportService(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
