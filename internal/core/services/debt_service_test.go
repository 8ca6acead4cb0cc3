package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/galeria-sm/stands_backend/internal/apperrors"
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
	"github.com/galeria-sm/stands_backend/internal/core/services"
	"github.com/galeria-sm/stands_backend/internal/dto"
)

type DebtServiceTestSuite struct {
	suite.Suite
	mockDebtRepo    *MockDebtRepository
	mockConceptRepo *MockConceptRepository
	mockStandRepo   *MockStandRepository
	mockTenantRepo  *MockTenantRepository
	service         portssvc.DebtSvcFacade
}

func (suite *DebtServiceTestSuite) SetupTest() {
	suite.mockDebtRepo = new(MockDebtRepository)
	suite.mockConceptRepo = new(MockConceptRepository)
	suite.mockStandRepo = new(MockStandRepository)
	suite.mockTenantRepo = new(MockTenantRepository)
	suite.service = services.NewDebtService(suite.mockDebtRepo, suite.mockConceptRepo, suite.mockStandRepo, suite.mockTenantRepo)
}

func debtConcept(tenantPays bool) *domain.DebtConcept {
	return &domain.DebtConcept{
		ConceptID:   uuid.NewString(),
		Description: "Alquiler",
		IsDebt:      true,
		TenantPays:  tenantPays,
		Active:      true,
	}
}

func (suite *DebtServiceTestSuite) TestCreateDebtLine_SnapshotsCurrentTenant() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	concept := debtConcept(true)
	standID := uuid.NewString()
	tenantID := uuid.NewString()

	req := dto.CreateDebtLineRequest{
		ConceptID: concept.ConceptID,
		StandID:   standID,
		DebtDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Monto:     decimal.NewFromInt(150),
		Mora:      decimal.NewFromInt(10),
	}

	suite.mockConceptRepo.On("FindConceptByID", ctx, concept.ConceptID).Return(concept, nil).Once()
	suite.mockStandRepo.On("FindStandByID", ctx, standID).Return(&domain.Stand{StandID: standID}, nil).Once()
	suite.mockTenantRepo.On("FindCurrentAssignment", ctx, standID).
		Return(&domain.TenantAssignment{StandID: standID, TenantID: tenantID, Current: true}, nil).Once()
	suite.mockDebtRepo.On("SaveDebtLine", ctx, mock.AnythingOfType("domain.DebtLine")).Return(nil).Once()

	line, err := suite.service.CreateDebtLine(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(line)
	suite.NotEmpty(line.DebtID)
	suite.False(line.Settled)
	suite.True(line.Active)
	suite.True(line.TotalPaid.IsZero())
	suite.Require().NotNil(line.TenantID)
	suite.Equal(tenantID, *line.TenantID)
	suite.Equal(creatorUserID, line.CreatedBy)

	suite.mockDebtRepo.AssertExpectations(suite.T())
	suite.mockTenantRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestCreateDebtLine_NoSnapshotWhenConceptDoesNotChargeTenant() {
	ctx := context.Background()
	concept := debtConcept(false)
	standID := uuid.NewString()

	req := dto.CreateDebtLineRequest{
		ConceptID: concept.ConceptID,
		StandID:   standID,
		DebtDate:  time.Now().UTC(),
		Monto:     decimal.NewFromInt(80),
	}

	suite.mockConceptRepo.On("FindConceptByID", ctx, concept.ConceptID).Return(concept, nil).Once()
	suite.mockStandRepo.On("FindStandByID", ctx, standID).Return(&domain.Stand{StandID: standID}, nil).Once()
	suite.mockDebtRepo.On("SaveDebtLine", ctx, mock.AnythingOfType("domain.DebtLine")).Return(nil).Once()

	line, err := suite.service.CreateDebtLine(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Nil(line.TenantID)
	// The tenant repo must not even be consulted
	suite.mockTenantRepo.AssertNotCalled(suite.T(), "FindCurrentAssignment", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestCreateDebtLine_RejectsNonDebtConcept() {
	ctx := context.Background()
	concept := debtConcept(false)
	concept.IsDebt = false

	req := dto.CreateDebtLineRequest{
		ConceptID: concept.ConceptID,
		StandID:   uuid.NewString(),
		DebtDate:  time.Now().UTC(),
		Monto:     decimal.NewFromInt(50),
	}

	suite.mockConceptRepo.On("FindConceptByID", ctx, concept.ConceptID).Return(concept, nil).Once()

	line, err := suite.service.CreateDebtLine(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(line)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SaveDebtLine", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestCreateDebtLine_RejectsInactiveConcept() {
	ctx := context.Background()
	concept := debtConcept(false)
	concept.Active = false

	req := dto.CreateDebtLineRequest{
		ConceptID: concept.ConceptID,
		StandID:   uuid.NewString(),
		DebtDate:  time.Now().UTC(),
		Monto:     decimal.NewFromInt(50),
	}

	suite.mockConceptRepo.On("FindConceptByID", ctx, concept.ConceptID).Return(concept, nil).Once()

	_, err := suite.service.CreateDebtLine(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DebtServiceTestSuite) TestCreateDebtLine_RejectsTenantWhoIsNotCurrent() {
	ctx := context.Background()
	concept := debtConcept(true)
	standID := uuid.NewString()
	formerTenantID := uuid.NewString()
	currentTenantID := uuid.NewString()

	req := dto.CreateDebtLineRequest{
		ConceptID: concept.ConceptID,
		StandID:   standID,
		DebtDate:  time.Now().UTC(),
		Monto:     decimal.NewFromInt(100),
		TenantID:  &formerTenantID,
	}

	suite.mockConceptRepo.On("FindConceptByID", ctx, concept.ConceptID).Return(concept, nil).Once()
	suite.mockStandRepo.On("FindStandByID", ctx, standID).Return(&domain.Stand{StandID: standID}, nil).Once()
	suite.mockTenantRepo.On("FindCurrentAssignment", ctx, standID).
		Return(&domain.TenantAssignment{StandID: standID, TenantID: currentTenantID, Current: true}, nil).Once()

	_, err := suite.service.CreateDebtLine(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SaveDebtLine", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestCreateDebtLine_RejectsNegativeAmounts() {
	ctx := context.Background()

	req := dto.CreateDebtLineRequest{
		ConceptID: uuid.NewString(),
		StandID:   uuid.NewString(),
		DebtDate:  time.Now().UTC(),
		Monto:     decimal.NewFromInt(-5),
	}

	_, err := suite.service.CreateDebtLine(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockConceptRepo.AssertNotCalled(suite.T(), "FindConceptByID", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestBatchCreateDebtLines_SkipsZeroAndKeepsFailuresIndependent() {
	ctx := context.Background()
	concept := debtConcept(false)
	standA := uuid.NewString()
	standB := uuid.NewString()
	standC := uuid.NewString()

	req := dto.BatchCreateDebtLinesRequest{
		ConceptID: concept.ConceptID,
		DebtDate:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Entries: []dto.BatchDebtEntry{
			{StandID: standA, Monto: decimal.NewFromInt(100)},
			{StandID: standB}, // both amounts zero, skipped
			{StandID: standC, Monto: decimal.NewFromInt(70)},
		},
	}

	suite.mockConceptRepo.On("FindConceptByID", ctx, concept.ConceptID).Return(concept, nil).Once()
	suite.mockDebtRepo.On("SaveDebtLine", ctx, mock.MatchedBy(func(l domain.DebtLine) bool {
		return l.StandID == standA
	})).Return(nil).Once()
	// standC fails at persistence; standA must stay created
	suite.mockDebtRepo.On("SaveDebtLine", ctx, mock.MatchedBy(func(l domain.DebtLine) bool {
		return l.StandID == standC
	})).Return(apperrors.ErrInternal).Once()

	result, err := suite.service.BatchCreateDebtLines(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Len(result.Created, 1)
	suite.Equal(standA, result.Created[0].StandID)
	suite.Equal([]string{standB}, result.Skipped)
	suite.Require().Len(result.Failures, 1)
	suite.Equal(standC, result.Failures[0].StandID)

	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestBatchCreateDebtLines_SuppressTenantSkipsSnapshot() {
	ctx := context.Background()
	concept := debtConcept(true)
	standID := uuid.NewString()

	req := dto.BatchCreateDebtLinesRequest{
		ConceptID: concept.ConceptID,
		DebtDate:  time.Now().UTC(),
		Entries: []dto.BatchDebtEntry{
			{StandID: standID, Monto: decimal.NewFromInt(100), SuppressTenant: true},
		},
	}

	suite.mockConceptRepo.On("FindConceptByID", ctx, concept.ConceptID).Return(concept, nil).Once()
	suite.mockDebtRepo.On("SaveDebtLine", ctx, mock.MatchedBy(func(l domain.DebtLine) bool {
		return l.TenantID == nil
	})).Return(nil).Once()

	result, err := suite.service.BatchCreateDebtLines(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Len(result.Created, 1)
	suite.mockTenantRepo.AssertNotCalled(suite.T(), "FindCurrentAssignment", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestBatchCreateDebtLines_UnassignedStandGetsNilSnapshot() {
	ctx := context.Background()
	concept := debtConcept(true)
	standID := uuid.NewString()

	req := dto.BatchCreateDebtLinesRequest{
		ConceptID: concept.ConceptID,
		DebtDate:  time.Now().UTC(),
		Entries: []dto.BatchDebtEntry{
			{StandID: standID, Mora: decimal.NewFromInt(15)},
		},
	}

	suite.mockConceptRepo.On("FindConceptByID", ctx, concept.ConceptID).Return(concept, nil).Once()
	suite.mockTenantRepo.On("FindCurrentAssignment", ctx, standID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockDebtRepo.On("SaveDebtLine", ctx, mock.MatchedBy(func(l domain.DebtLine) bool {
		return l.TenantID == nil
	})).Return(nil).Once()

	result, err := suite.service.BatchCreateDebtLines(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Len(result.Created, 1)
	suite.Empty(result.Failures)
}

func (suite *DebtServiceTestSuite) TestUpdateDebtLine_RejectsTotalBelowPaid() {
	ctx := context.Background()
	debtID := uuid.NewString()
	existing := &domain.DebtLine{
		DebtID:    debtID,
		Amount:    decimal.NewFromInt(100),
		LateFee:   decimal.NewFromInt(20),
		TotalPaid: decimal.NewFromInt(90),
		Active:    true,
	}

	newMonto := decimal.NewFromInt(50)
	req := dto.UpdateDebtLineRequest{Monto: &newMonto}

	suite.mockDebtRepo.On("FindDebtLineByID", ctx, debtID).Return(existing, nil).Once()

	// 50 + 20 < 90 paid
	_, err := suite.service.UpdateDebtLine(ctx, debtID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "UpdateDebtLine", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestSetSettled_RejectsSettlingWithOutstandingBalance() {
	ctx := context.Background()
	debtID := uuid.NewString()
	line := &domain.DebtLine{
		DebtID:    debtID,
		Amount:    decimal.NewFromInt(100),
		TotalPaid: decimal.NewFromInt(40),
		Active:    true,
	}

	suite.mockDebtRepo.On("FindDebtLineByID", ctx, debtID).Return(line, nil).Once()

	_, err := suite.service.SetSettled(ctx, debtID, true, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SetDebtLineSettled", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestSetSettled_ReopeningIsAlwaysAllowed() {
	ctx := context.Background()
	debtID := uuid.NewString()
	line := &domain.DebtLine{
		DebtID:    debtID,
		Amount:    decimal.NewFromInt(100),
		TotalPaid: decimal.NewFromInt(100),
		Settled:   true,
		Active:    true,
	}

	suite.mockDebtRepo.On("FindDebtLineByID", ctx, debtID).Return(line, nil).Once()
	suite.mockDebtRepo.On("SetDebtLineSettled", ctx, debtID, false, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.SetSettled(ctx, debtID, false, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(updated.Settled)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestDeleteDebtLine_ReferencedLineConflicts() {
	ctx := context.Background()
	debtID := uuid.NewString()

	suite.mockDebtRepo.On("IsDebtLineReferenced", ctx, debtID).Return(true, nil).Once()

	err := suite.service.DeleteDebtLine(ctx, debtID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "DeleteDebtLine", mock.Anything, mock.Anything)
}

func TestDebtServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DebtServiceTestSuite))
}
