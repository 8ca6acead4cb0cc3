package services_test

import (
	"context"
	"testing"

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

type ReceiptServiceTestSuite struct {
	suite.Suite
	mockReceiptRepo   *MockReceiptRepository
	mockNumberingRepo *MockNumberingRepository
	mockDebtRepo      *MockDebtRepository
	mockConceptRepo   *MockConceptRepository
	mockStandRepo     *MockStandRepository
	mockCatalogRepo   *MockCatalogRepository
	service           portssvc.ReceiptSvcFacade

	standID         string
	paymentMethodID string
}

func (suite *ReceiptServiceTestSuite) SetupTest() {
	suite.mockReceiptRepo = new(MockReceiptRepository)
	suite.mockNumberingRepo = new(MockNumberingRepository)
	suite.mockDebtRepo = new(MockDebtRepository)
	suite.mockConceptRepo = new(MockConceptRepository)
	suite.mockStandRepo = new(MockStandRepository)
	suite.mockCatalogRepo = new(MockCatalogRepository)
	suite.service = services.NewReceiptService(
		suite.mockReceiptRepo,
		suite.mockNumberingRepo,
		suite.mockDebtRepo,
		suite.mockConceptRepo,
		suite.mockStandRepo,
		suite.mockCatalogRepo,
	)

	suite.standID = uuid.NewString()
	suite.paymentMethodID = uuid.NewString()
}

// expectValidHeader wires the stand and payment method lookups every income
// draft passes through.
func (suite *ReceiptServiceTestSuite) expectValidHeader(ctx context.Context) {
	suite.mockStandRepo.On("FindStandByID", ctx, suite.standID).
		Return(&domain.Stand{StandID: suite.standID, Active: true}, nil).Once()
	suite.mockCatalogRepo.On("FindPaymentMethodByID", ctx, suite.paymentMethodID).
		Return(&domain.PaymentMethod{PaymentMethodID: suite.paymentMethodID, Active: true}, nil).Once()
}

func (suite *ReceiptServiceTestSuite) outstandingLine(balance int64) *domain.DebtLine {
	return &domain.DebtLine{
		DebtID:  uuid.NewString(),
		StandID: suite.standID,
		Amount:  decimal.NewFromInt(balance),
		Active:  true,
		Concept: &domain.DebtConcept{Description: "Alquiler"},
		Tenant:  &domain.Tenant{Name: "Rosa"},
	}
}

func (suite *ReceiptServiceTestSuite) TestCreateIncomeReceipt_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	line := suite.outstandingLine(200)

	req := dto.CreateIncomeReceiptRequest{
		PaymentMethodID: suite.paymentMethodID,
		StandID:         suite.standID,
		Details: []dto.IncomeDetailRequest{
			{DebtID: line.DebtID, AmountPaid: decimal.NewFromInt(120)},
		},
	}

	suite.expectValidHeader(ctx)
	suite.mockDebtRepo.On("FindDebtLineByID", ctx, line.DebtID).Return(line, nil).Once()
	suite.mockReceiptRepo.On("SaveIncomeReceipt", ctx, mock.MatchedBy(func(r domain.Receipt) bool {
		return r.Type == domain.Income &&
			r.Total.Equal(decimal.NewFromInt(120)) &&
			len(r.Details) == 1 &&
			r.Details[0].ConceptDescription == "Alquiler" &&
			r.Details[0].TenantName != nil && *r.Details[0].TenantName == "Rosa"
	})).Return(&domain.Receipt{ReceiptID: uuid.NewString(), Number: 42, Type: domain.Income, Total: decimal.NewFromInt(120)}, nil).Once()

	saved, err := suite.service.CreateIncomeReceipt(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal(int64(42), saved.Number)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestCreateIncomeReceipt_ReportsEveryViolationAtOnce() {
	ctx := context.Background()
	settledLine := suite.outstandingLine(100)
	settledLine.Settled = true
	smallLine := suite.outstandingLine(30)
	missingID := uuid.NewString()

	req := dto.CreateIncomeReceiptRequest{
		PaymentMethodID: suite.paymentMethodID,
		StandID:         suite.standID,
		Details: []dto.IncomeDetailRequest{
			{DebtID: settledLine.DebtID, AmountPaid: decimal.NewFromInt(50)},
			{DebtID: smallLine.DebtID, AmountPaid: decimal.NewFromInt(45)}, // over balance
			{DebtID: missingID, AmountPaid: decimal.NewFromInt(10)},
		},
	}

	suite.expectValidHeader(ctx)
	suite.mockDebtRepo.On("FindDebtLineByID", ctx, settledLine.DebtID).Return(settledLine, nil).Once()
	suite.mockDebtRepo.On("FindDebtLineByID", ctx, smallLine.DebtID).Return(smallLine, nil).Once()
	suite.mockDebtRepo.On("FindDebtLineByID", ctx, missingID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateIncomeReceipt(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	// One violation per broken detail, all reported together
	suite.Len(validationErr.Violations, 3)
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "SaveIncomeReceipt", mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestCreateIncomeReceipt_RejectsDuplicateDebtLines() {
	ctx := context.Background()
	line := suite.outstandingLine(100)

	req := dto.CreateIncomeReceiptRequest{
		PaymentMethodID: suite.paymentMethodID,
		StandID:         suite.standID,
		Details: []dto.IncomeDetailRequest{
			{DebtID: line.DebtID, AmountPaid: decimal.NewFromInt(40)},
			{DebtID: line.DebtID, AmountPaid: decimal.NewFromInt(30)},
		},
	}

	suite.expectValidHeader(ctx)
	suite.mockDebtRepo.On("FindDebtLineByID", ctx, line.DebtID).Return(line, nil).Once()

	_, err := suite.service.CreateIncomeReceipt(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReceiptServiceTestSuite) TestCreateIncomeReceipt_RejectsEmptyDetails() {
	ctx := context.Background()
	req := dto.CreateIncomeReceiptRequest{
		PaymentMethodID: suite.paymentMethodID,
		StandID:         suite.standID,
	}

	suite.expectValidHeader(ctx)

	_, err := suite.service.CreateIncomeReceipt(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReceiptServiceTestSuite) TestCreateIncomeReceipt_RejectsLineFromAnotherStand() {
	ctx := context.Background()
	line := suite.outstandingLine(100)
	line.StandID = uuid.NewString() // belongs elsewhere

	req := dto.CreateIncomeReceiptRequest{
		PaymentMethodID: suite.paymentMethodID,
		StandID:         suite.standID,
		Details: []dto.IncomeDetailRequest{
			{DebtID: line.DebtID, AmountPaid: decimal.NewFromInt(10)},
		},
	}

	suite.expectValidHeader(ctx)
	suite.mockDebtRepo.On("FindDebtLineByID", ctx, line.DebtID).Return(line, nil).Once()

	_, err := suite.service.CreateIncomeReceipt(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReceiptServiceTestSuite) TestCreateExpenseReceipt_SnapshotsConceptDescription() {
	ctx := context.Background()
	conceptID := uuid.NewString()

	req := dto.CreateExpenseReceiptRequest{
		Details: []dto.ExpenseDetailRequest{
			{ConceptID: conceptID, Description: "Limpieza mensual", Amount: decimal.NewFromInt(75)},
		},
	}

	suite.mockConceptRepo.On("FindConceptByID", ctx, conceptID).
		Return(&domain.DebtConcept{ConceptID: conceptID, Description: "Servicios", Active: true}, nil).Once()
	suite.mockReceiptRepo.On("SaveExpenseReceipt", ctx, mock.MatchedBy(func(r domain.Receipt) bool {
		return r.Type == domain.Expense &&
			r.Total.Equal(decimal.NewFromInt(75)) &&
			len(r.Details) == 1 &&
			r.Details[0].ConceptDescription == "Servicios" &&
			r.Details[0].Description == "Limpieza mensual"
	})).Return(&domain.Receipt{ReceiptID: uuid.NewString(), Number: 7, Type: domain.Expense}, nil).Once()

	saved, err := suite.service.CreateExpenseReceipt(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(int64(7), saved.Number)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestUpdateIncomeReceipt_KeepsNumberAndCreator() {
	ctx := context.Background()
	receiptID := uuid.NewString()
	originalCreator := uuid.NewString()
	updaterUserID := uuid.NewString()
	line := suite.outstandingLine(500)

	existing := &domain.Receipt{
		ReceiptID: receiptID,
		Number:    42,
		Type:      domain.Income,
		AuditFields: domain.AuditFields{
			CreatedBy: originalCreator,
		},
	}

	req := dto.CreateIncomeReceiptRequest{
		PaymentMethodID: suite.paymentMethodID,
		StandID:         suite.standID,
		Details: []dto.IncomeDetailRequest{
			{DebtID: line.DebtID, AmountPaid: decimal.NewFromInt(300)},
		},
	}

	suite.mockReceiptRepo.On("FindReceiptByID", ctx, receiptID).Return(existing, nil).Once()
	suite.expectValidHeader(ctx)
	suite.mockDebtRepo.On("FindDebtLineByID", ctx, line.DebtID).Return(line, nil).Once()
	suite.mockReceiptRepo.On("UpdateIncomeReceipt", ctx, mock.MatchedBy(func(r domain.Receipt) bool {
		return r.ReceiptID == receiptID &&
			r.Number == 42 &&
			r.CreatedBy == originalCreator &&
			r.LastUpdatedBy == updaterUserID
	})).Return(&domain.Receipt{ReceiptID: receiptID, Number: 42, Type: domain.Income}, nil).Once()

	saved, err := suite.service.UpdateIncomeReceipt(ctx, receiptID, req, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(int64(42), saved.Number)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestUpdateIncomeReceipt_RejectsExpenseReceipt() {
	ctx := context.Background()
	receiptID := uuid.NewString()

	suite.mockReceiptRepo.On("FindReceiptByID", ctx, receiptID).
		Return(&domain.Receipt{ReceiptID: receiptID, Type: domain.Expense}, nil).Once()

	_, err := suite.service.UpdateIncomeReceipt(ctx, receiptID, dto.CreateIncomeReceiptRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "UpdateIncomeReceipt", mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestPeekNextNumber() {
	ctx := context.Background()

	suite.mockNumberingRepo.On("PeekNextNumber", ctx, domain.IncomeReceiptDoc).Return(int64(101), nil).Once()

	n, err := suite.service.PeekNextNumber(ctx, domain.IncomeReceiptDoc)

	suite.Require().NoError(err)
	suite.Equal(int64(101), n)
}

func TestReceiptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}
