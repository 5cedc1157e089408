package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/apperrors"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/dto"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/handlers"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/middleware"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/platform/validation"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SessionService ---

type MockSessionService struct {
	mock.Mock
}

var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

func (m *MockSessionService) OpenSession(ctx context.Context, tenantID string, req dto.OpenSessionRequest, userID string) (*domain.POSSession, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSSession), args.Error(1)
}

func (m *MockSessionService) CloseSession(ctx context.Context, tenantID, sessionID string, req dto.CloseSessionRequest, userID string) (*domain.POSSession, error) {
	args := m.Called(ctx, tenantID, sessionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSSession), args.Error(1)
}

func (m *MockSessionService) RegisterCashMovement(ctx context.Context, tenantID, sessionID string, req dto.CashMovementRequest, userID string) (*domain.CashMovement, error) {
	args := m.Called(ctx, tenantID, sessionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashMovement), args.Error(1)
}

func (m *MockSessionService) ListCashMovements(ctx context.Context, tenantID, sessionID string, userID string) ([]domain.CashMovement, error) {
	args := m.Called(ctx, tenantID, sessionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashMovement), args.Error(1)
}

func (m *MockSessionService) GetCurrentSession(ctx context.Context, tenantID, userID string) (*domain.POSSession, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSSession), args.Error(1)
}

func (m *MockSessionService) GetSession(ctx context.Context, tenantID, sessionID string, userID string) (*domain.POSSession, error) {
	args := m.Called(ctx, tenantID, sessionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSSession), args.Error(1)
}

func (m *MockSessionService) ListSessions(ctx context.Context, tenantID string, params dto.ListSessionsParams, userID string) ([]domain.POSSession, *string, error) {
	args := m.Called(ctx, tenantID, params, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var nextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		nextToken = &tokenVal
	}
	return args.Get(0).([]domain.POSSession), nextToken, args.Error(2)
}

// --- Mock RegisterService ---

type MockRegisterService struct {
	mock.Mock
}

var _ portssvc.RegisterSvcFacade = (*MockRegisterService)(nil)

func (m *MockRegisterService) CreateRegister(ctx context.Context, tenantID string, req dto.CreateRegisterRequest, userID string) (*domain.CashRegister, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashRegister), args.Error(1)
}

func (m *MockRegisterService) GetRegister(ctx context.Context, tenantID, registerID string, userID string) (*domain.CashRegister, error) {
	args := m.Called(ctx, tenantID, registerID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashRegister), args.Error(1)
}

func (m *MockRegisterService) ListRegisters(ctx context.Context, tenantID string, userID string) ([]domain.CashRegister, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashRegister), args.Error(1)
}

func (m *MockRegisterService) UpdateRegister(ctx context.Context, tenantID, registerID string, req dto.UpdateRegisterRequest, userID string) (*domain.CashRegister, error) {
	args := m.Called(ctx, tenantID, registerID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashRegister), args.Error(1)
}

// --- Test Suite ---

type SessionHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockSessionService  *MockSessionService
	mockRegisterService *MockRegisterService
	jwtSecret           string
	tenantID            string
	userID              string
}

func (suite *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(validation.RegisterDecimalValidators())
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.mockSessionService = new(MockSessionService)
	suite.mockRegisterService = new(MockRegisterService)

	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))
	tenantScoped := suite.router.Group("/api/v1/tenants/:tenant_id")
	handlers.RegisterSessionRoutes(tenantScoped, suite.mockSessionService, suite.mockRegisterService)
}

func (suite *SessionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "stockflow-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *SessionHandlerTestSuite) doJSON(method, url string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SessionHandlerTestSuite) sessionsURL(suffix string) string {
	return fmt.Sprintf("/api/v1/tenants/%s/pos-sessions%s", suite.tenantID, suffix)
}

func (suite *SessionHandlerTestSuite) TestOpenSession_Created() {
	registerID := uuid.NewString()
	session := &domain.POSSession{
		SessionID:      uuid.NewString(),
		TenantID:       suite.tenantID,
		CashRegisterID: registerID,
		OpenedByUserID: suite.userID,
		Status:         domain.SessionOpen,
		OpeningAmount:  decimal.NewFromInt(100),
		OpenedAt:       time.Now(),
	}

	suite.mockSessionService.On("OpenSession", mock.Anything, suite.tenantID, mock.MatchedBy(func(req dto.OpenSessionRequest) bool {
		return req.CashRegisterID == registerID && req.OpeningAmount.Equal(decimal.NewFromInt(100))
	}), suite.userID).Return(session, nil).Once()
	suite.mockRegisterService.On("GetRegister", mock.Anything, suite.tenantID, registerID, suite.userID).Return(&domain.CashRegister{
		CashRegisterID: registerID,
		TenantID:       suite.tenantID,
		Code:           "FD01",
		Status:         domain.RegisterOpen,
	}, nil).Once()

	w := suite.doJSON(http.MethodPost, suite.sessionsURL(""), gin.H{
		"cashRegisterID": registerID,
		"openingAmount":  "100",
	})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.SessionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(session.SessionID, resp.SessionID)
	suite.Require().NotNil(resp.CashRegister)
	suite.Equal("FD01", resp.CashRegister.Code)

	suite.mockSessionService.AssertExpectations(suite.T())
}

func (suite *SessionHandlerTestSuite) TestOpenSession_Conflict() {
	registerID := uuid.NewString()

	suite.mockSessionService.On("OpenSession", mock.Anything, suite.tenantID, mock.AnythingOfType("dto.OpenSessionRequest"), suite.userID).
		Return(nil, fmt.Errorf("%w: register busy", apperrors.ErrConflict)).Once()

	w := suite.doJSON(http.MethodPost, suite.sessionsURL(""), gin.H{
		"cashRegisterID": registerID,
		"openingAmount":  "50",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *SessionHandlerTestSuite) TestOpenSession_RegisterNotFound() {
	suite.mockSessionService.On("OpenSession", mock.Anything, suite.tenantID, mock.AnythingOfType("dto.OpenSessionRequest"), suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodPost, suite.sessionsURL(""), gin.H{
		"cashRegisterID": uuid.NewString(),
		"openingAmount":  "50",
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SessionHandlerTestSuite) TestOpenSession_NegativeAmountRejectedByBinding() {
	w := suite.doJSON(http.MethodPost, suite.sessionsURL(""), gin.H{
		"cashRegisterID": uuid.NewString(),
		"openingAmount":  "-10",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSessionService.AssertNotCalled(suite.T(), "OpenSession")
}

func (suite *SessionHandlerTestSuite) TestCloseSession_AlreadyClosed() {
	sessionID := uuid.NewString()

	suite.mockSessionService.On("CloseSession", mock.Anything, suite.tenantID, sessionID, mock.AnythingOfType("dto.CloseSessionRequest"), suite.userID).
		Return(nil, fmt.Errorf("%w: session already closed", apperrors.ErrInvalidState)).Once()

	w := suite.doJSON(http.MethodPost, suite.sessionsURL("/"+sessionID+"/close"), gin.H{
		"closingAmount": "640",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *SessionHandlerTestSuite) TestCloseSession_Forbidden() {
	sessionID := uuid.NewString()

	suite.mockSessionService.On("CloseSession", mock.Anything, suite.tenantID, sessionID, mock.AnythingOfType("dto.CloseSessionRequest"), suite.userID).
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.doJSON(http.MethodPost, suite.sessionsURL("/"+sessionID+"/close"), gin.H{
		"closingAmount": "640",
	})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *SessionHandlerTestSuite) TestRegisterCashMovement_Created() {
	sessionID := uuid.NewString()
	movement := &domain.CashMovement{
		MovementID: uuid.NewString(),
		SessionID:  sessionID,
		Type:       domain.CashOut,
		Amount:     decimal.NewFromInt(50),
		Reason:     "supplier payment",
		CreatedAt:  time.Now(),
		CreatedBy:  suite.userID,
	}

	suite.mockSessionService.On("RegisterCashMovement", mock.Anything, suite.tenantID, sessionID, mock.MatchedBy(func(req dto.CashMovementRequest) bool {
		return req.Type == domain.CashOut && req.Amount.Equal(decimal.NewFromInt(50))
	}), suite.userID).Return(movement, nil).Once()

	w := suite.doJSON(http.MethodPost, suite.sessionsURL("/"+sessionID+"/movements"), gin.H{
		"type":   "CASH_OUT",
		"amount": "50",
		"reason": "supplier payment",
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockSessionService.AssertExpectations(suite.T())
}

func (suite *SessionHandlerTestSuite) TestRegisterCashMovement_SessionClosed() {
	sessionID := uuid.NewString()

	suite.mockSessionService.On("RegisterCashMovement", mock.Anything, suite.tenantID, sessionID, mock.AnythingOfType("dto.CashMovementRequest"), suite.userID).
		Return(nil, apperrors.ErrInvalidState).Once()

	w := suite.doJSON(http.MethodPost, suite.sessionsURL("/"+sessionID+"/movements"), gin.H{
		"type":   "CASH_IN",
		"amount": "20",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *SessionHandlerTestSuite) TestRegisterCashMovement_SessionNotFound() {
	sessionID := uuid.NewString()

	suite.mockSessionService.On("RegisterCashMovement", mock.Anything, suite.tenantID, sessionID, mock.AnythingOfType("dto.CashMovementRequest"), suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodPost, suite.sessionsURL("/"+sessionID+"/movements"), gin.H{
		"type":   "CASH_OUT",
		"amount": "15",
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SessionHandlerTestSuite) TestGetCurrentSession_NoneOpen() {
	suite.mockSessionService.On("GetCurrentSession", mock.Anything, suite.tenantID, suite.userID).Return(nil, nil).Once()

	w := suite.doJSON(http.MethodGet, suite.sessionsURL("/current"), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SessionHandlerTestSuite) TestListSessions_Forbidden() {
	suite.mockSessionService.On("ListSessions", mock.Anything, suite.tenantID, mock.AnythingOfType("dto.ListSessionsParams"), suite.userID).
		Return(nil, nil, apperrors.ErrForbidden).Once()

	w := suite.doJSON(http.MethodGet, suite.sessionsURL(""), nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *SessionHandlerTestSuite) TestMissingToken_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, suite.sessionsURL("/current"), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSessionService.AssertNotCalled(suite.T(), "GetCurrentSession")
}

func TestSessionHandler(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}
