package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portsrepo "github.com/galeria-sm/stands_backend/internal/core/ports/repositories"
)

// --- Mock repositories shared by the service test suites ---

type MockConceptRepository struct {
	mock.Mock
}

func (m *MockConceptRepository) SaveConcept(ctx context.Context, concept domain.DebtConcept) error {
	args := m.Called(ctx, concept)
	return args.Error(0)
}

func (m *MockConceptRepository) FindConceptByID(ctx context.Context, conceptID string) (*domain.DebtConcept, error) {
	args := m.Called(ctx, conceptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebtConcept), args.Error(1)
}

func (m *MockConceptRepository) ListConcepts(ctx context.Context, activeOnly bool) ([]domain.DebtConcept, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DebtConcept), args.Error(1)
}

func (m *MockConceptRepository) UpdateConcept(ctx context.Context, concept domain.DebtConcept) error {
	args := m.Called(ctx, concept)
	return args.Error(0)
}

func (m *MockConceptRepository) DeactivateConcept(ctx context.Context, conceptID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, conceptID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockConceptRepository) DeleteConcept(ctx context.Context, conceptID string) error {
	args := m.Called(ctx, conceptID)
	return args.Error(0)
}

type MockStandRepository struct {
	mock.Mock
}

func (m *MockStandRepository) SaveStand(ctx context.Context, stand domain.Stand) error {
	args := m.Called(ctx, stand)
	return args.Error(0)
}

func (m *MockStandRepository) FindStandByID(ctx context.Context, standID string) (*domain.Stand, error) {
	args := m.Called(ctx, standID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stand), args.Error(1)
}

func (m *MockStandRepository) ListStands(ctx context.Context, level *int, activeOnly bool) ([]domain.Stand, error) {
	args := m.Called(ctx, level, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stand), args.Error(1)
}

func (m *MockStandRepository) UpdateStand(ctx context.Context, stand domain.Stand) error {
	args := m.Called(ctx, stand)
	return args.Error(0)
}

func (m *MockStandRepository) DeactivateStand(ctx context.Context, standID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, standID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockStandRepository) DeleteStand(ctx context.Context, standID string) error {
	args := m.Called(ctx, standID)
	return args.Error(0)
}

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) ListTenants(ctx context.Context, limit int, offset int) ([]domain.Tenant, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindCurrentAssignment(ctx context.Context, standID string) (*domain.TenantAssignment, error) {
	args := m.Called(ctx, standID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantAssignment), args.Error(1)
}

func (m *MockTenantRepository) ListAssignmentsByStand(ctx context.Context, standID string) ([]domain.TenantAssignment, error) {
	args := m.Called(ctx, standID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TenantAssignment), args.Error(1)
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) AssignTenant(ctx context.Context, assignment domain.TenantAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockTenantRepository) ClearCurrentAssignment(ctx context.Context, standID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, standID, updatedBy, updatedAt)
	return args.Error(0)
}

type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) FindDebtLineByID(ctx context.Context, debtID string) (*domain.DebtLine, error) {
	args := m.Called(ctx, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebtLine), args.Error(1)
}

func (m *MockDebtRepository) ListDebtLines(ctx context.Context, filter portsrepo.DebtLineFilter, limit int, nextToken *string) ([]domain.DebtLine, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var lines []domain.DebtLine
	if args.Get(0) != nil {
		lines = args.Get(0).([]domain.DebtLine)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return lines, token, args.Error(2)
}

func (m *MockDebtRepository) ListOutstandingByStand(ctx context.Context, standID string, excludeDebtIDs []string) ([]domain.DebtLine, error) {
	args := m.Called(ctx, standID, excludeDebtIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DebtLine), args.Error(1)
}

func (m *MockDebtRepository) IsDebtLineReferenced(ctx context.Context, debtID string) (bool, error) {
	args := m.Called(ctx, debtID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDebtRepository) SaveDebtLine(ctx context.Context, line domain.DebtLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockDebtRepository) UpdateDebtLine(ctx context.Context, line domain.DebtLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockDebtRepository) SetDebtLineSettled(ctx context.Context, debtID string, settled bool, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, debtID, settled, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockDebtRepository) DeactivateDebtLine(ctx context.Context, debtID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, debtID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockDebtRepository) DeleteDebtLine(ctx context.Context, debtID string) error {
	args := m.Called(ctx, debtID)
	return args.Error(0)
}

type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) ListReceipts(ctx context.Context, receiptType domain.ReceiptType, limit int, nextToken *string) ([]domain.Receipt, *string, error) {
	args := m.Called(ctx, receiptType, limit, nextToken)
	var receipts []domain.Receipt
	if args.Get(0) != nil {
		receipts = args.Get(0).([]domain.Receipt)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return receipts, token, args.Error(2)
}

func (m *MockReceiptRepository) SaveIncomeReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error) {
	args := m.Called(ctx, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) SaveExpenseReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error) {
	args := m.Called(ctx, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) UpdateIncomeReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error) {
	args := m.Called(ctx, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

type MockNumberingRepository struct {
	mock.Mock
}

func (m *MockNumberingRepository) PeekNextNumber(ctx context.Context, docType domain.DocumentType) (int64, error) {
	args := m.Called(ctx, docType)
	return args.Get(0).(int64), args.Error(1)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockCatalogRepository) FindPaymentMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, methodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethod), args.Error(1)
}

func (m *MockCatalogRepository) ListPaymentMethods(ctx context.Context, activeOnly bool) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

func (m *MockCatalogRepository) SaveCollectingEntity(ctx context.Context, entity domain.CollectingEntity) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockCatalogRepository) FindCollectingEntityByID(ctx context.Context, entityID string) (*domain.CollectingEntity, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollectingEntity), args.Error(1)
}

func (m *MockCatalogRepository) ListCollectingEntities(ctx context.Context, activeOnly bool) ([]domain.CollectingEntity, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CollectingEntity), args.Error(1)
}
