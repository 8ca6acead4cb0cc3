package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/galeria-sm/stands_backend/internal/apperrors"
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
	"github.com/galeria-sm/stands_backend/internal/core/services"
	"github.com/galeria-sm/stands_backend/internal/dto"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockTenantRepo *MockTenantRepository
	mockStandRepo  *MockStandRepository
	service        portssvc.TenantSvcFacade
}

func (suite *TenantServiceTestSuite) SetupTest() {
	suite.mockTenantRepo = new(MockTenantRepository)
	suite.mockStandRepo = new(MockStandRepository)
	suite.service = services.NewTenantService(suite.mockTenantRepo, suite.mockStandRepo)
}

func (suite *TenantServiceTestSuite) TestCreateTenant_AllowsDuplicateNames() {
	ctx := context.Background()
	req := dto.CreateTenantRequest{Name: "Maria Perez"}

	// No uniqueness lookup: two tenants may share a name
	suite.mockTenantRepo.On("SaveTenant", ctx, mock.AnythingOfType("domain.Tenant")).Return(nil).Once()

	tenant, err := suite.service.CreateTenant(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotEmpty(tenant.TenantID)
	suite.Equal(req.Name, tenant.Name)
	suite.mockTenantRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestGetCurrent_UnassignedStandReturnsNil() {
	ctx := context.Background()
	standID := uuid.NewString()

	suite.mockStandRepo.On("FindStandByID", ctx, standID).Return(&domain.Stand{StandID: standID}, nil).Maybe()
	suite.mockTenantRepo.On("FindCurrentAssignment", ctx, standID).Return(nil, apperrors.ErrNotFound).Once()

	assignment, err := suite.service.GetCurrent(ctx, standID)

	suite.Require().NoError(err)
	suite.Nil(assignment)
}

func (suite *TenantServiceTestSuite) TestAssign_SupersedesPreviousTenant() {
	ctx := context.Background()
	standID := uuid.NewString()
	tenantID := uuid.NewString()
	creatorUserID := uuid.NewString()
	startDate := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	req := dto.AssignTenantRequest{StandID: standID, TenantID: tenantID, StartDate: startDate}

	suite.mockStandRepo.On("FindStandByID", ctx, standID).Return(&domain.Stand{StandID: standID}, nil).Once()
	suite.mockTenantRepo.On("FindTenantByID", ctx, tenantID).Return(&domain.Tenant{TenantID: tenantID, Name: "Juan"}, nil).Once()
	suite.mockTenantRepo.On("AssignTenant", ctx, mock.MatchedBy(func(a domain.TenantAssignment) bool {
		return a.StandID == standID && a.TenantID == tenantID && a.Current && a.StartDate.Equal(startDate)
	})).Return(nil).Once()

	assignment, err := suite.service.Assign(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(assignment)
	suite.True(assignment.Current)
	suite.Equal("Juan", assignment.TenantName)
	suite.NotEmpty(assignment.AssignmentID)

	suite.mockTenantRepo.AssertExpectations(suite.T())
	suite.mockStandRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestAssign_UnknownTenantFails() {
	ctx := context.Background()
	standID := uuid.NewString()
	tenantID := uuid.NewString()

	req := dto.AssignTenantRequest{StandID: standID, TenantID: tenantID, StartDate: time.Now().UTC()}

	suite.mockStandRepo.On("FindStandByID", ctx, standID).Return(&domain.Stand{StandID: standID}, nil).Once()
	suite.mockTenantRepo.On("FindTenantByID", ctx, tenantID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Assign(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTenantRepo.AssertNotCalled(suite.T(), "AssignTenant", mock.Anything, mock.Anything)
}

func (suite *TenantServiceTestSuite) TestRemove_IsIdempotent() {
	ctx := context.Background()
	standID := uuid.NewString()
	updaterUserID := uuid.NewString()

	suite.mockStandRepo.On("FindStandByID", ctx, standID).Return(&domain.Stand{StandID: standID}, nil).Twice()
	suite.mockTenantRepo.On("ClearCurrentAssignment", ctx, standID, updaterUserID, mock.AnythingOfType("time.Time")).Return(nil).Twice()

	suite.Require().NoError(suite.service.Remove(ctx, standID, updaterUserID))
	// A second removal on an already-unassigned stand succeeds too
	suite.Require().NoError(suite.service.Remove(ctx, standID, updaterUserID))

	suite.mockTenantRepo.AssertExpectations(suite.T())
}

func TestTenantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}
