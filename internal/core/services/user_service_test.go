package services_test

import (
	"context"
	"testing"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/apperrors"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/dto"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "cashier1", Password: "s3cretpass", Name: "Casey"}

	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "cashier1" && u.PasswordHash != "" && u.PasswordHash != "s3cretpass"
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.True(utils.CheckPasswordHash("s3cretpass", user.PasswordHash))

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_UsernameTaken() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "cashier1", Password: "s3cretpass", Name: "Casey"}

	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).Return(apperrors.ErrConflict).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cretpass")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "cashier1", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "cashier1").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "cashier1", "s3cretpass")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cretpass")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "cashier1", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "cashier1").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "cashier1", "wrongpass")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUsername() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestUpdateUser_SelfOnly() {
	ctx := context.Background()
	name := "New Name"

	user, err := suite.service.UpdateUser(ctx, uuid.NewString(), dto.UpdateUserRequest{Name: &name}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser")
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfOnly() {
	ctx := context.Background()

	err := suite.service.DeleteUser(ctx, uuid.NewString(), uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted")
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_ExistingByGoogleID() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{ID: "google-sub-1", Email: "casey@example.com", Name: "Casey"}
	stored := &domain.User{UserID: uuid.NewString(), Username: "casey@example.com", GoogleID: &info.ID}

	suite.mockUserRepo.On("FindUserByGoogleID", mock.Anything, "google-sub-1").Return(stored, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_LinksByEmail() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{ID: "google-sub-2", Email: "casey@example.com", Name: "Casey"}
	stored := &domain.User{UserID: uuid.NewString(), Username: "casey@example.com"}

	suite.mockUserRepo.On("FindUserByGoogleID", mock.Anything, "google-sub-2").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "casey@example.com").Return(stored, nil).Once()
	suite.mockUserRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.GoogleID != nil && *u.GoogleID == "google-sub-2"
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Require().NotNil(user.GoogleID)
	suite.Equal("google-sub-2", *user.GoogleID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_ProvisionsNew() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{ID: "google-sub-3", Email: "new@example.com", Name: "Newcomer"}

	suite.mockUserRepo.On("FindUserByGoogleID", mock.Anything, "google-sub-3").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "new@example.com" && u.GoogleID != nil && *u.GoogleID == "google-sub-3"
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("Newcomer", user.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
