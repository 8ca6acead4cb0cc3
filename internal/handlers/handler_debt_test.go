package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
	"github.com/galeria-sm/stands_backend/internal/dto"
	"github.com/galeria-sm/stands_backend/internal/handlers"
	"github.com/galeria-sm/stands_backend/internal/middleware"
	"github.com/galeria-sm/stands_backend/internal/utils"
)

// --- Mock DebtService ---
type MockDebtService struct {
	mock.Mock
}

func (m *MockDebtService) CreateDebtLine(ctx context.Context, req dto.CreateDebtLineRequest, creatorUserID string) (*domain.DebtLine, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebtLine), args.Error(1)
}
func (m *MockDebtService) BatchCreateDebtLines(ctx context.Context, req dto.BatchCreateDebtLinesRequest, creatorUserID string) (*dto.BatchDebtResult, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BatchDebtResult), args.Error(1)
}
func (m *MockDebtService) GetDebtLineByID(ctx context.Context, debtID string) (*domain.DebtLine, error) {
	args := m.Called(ctx, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebtLine), args.Error(1)
}
func (m *MockDebtService) ListDebtLines(ctx context.Context, params dto.ListDebtLinesParams) ([]domain.DebtLine, *string, error) {
	args := m.Called(ctx, params)
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
func (m *MockDebtService) ListOutstanding(ctx context.Context, standID string, excludeDebtIDs []string) ([]domain.DebtLine, error) {
	args := m.Called(ctx, standID, excludeDebtIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DebtLine), args.Error(1)
}
func (m *MockDebtService) UpdateDebtLine(ctx context.Context, debtID string, req dto.UpdateDebtLineRequest, updaterUserID string) (*domain.DebtLine, error) {
	args := m.Called(ctx, debtID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebtLine), args.Error(1)
}
func (m *MockDebtService) SetSettled(ctx context.Context, debtID string, settled bool, updaterUserID string) (*domain.DebtLine, error) {
	args := m.Called(ctx, debtID, settled, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebtLine), args.Error(1)
}
func (m *MockDebtService) DeactivateDebtLine(ctx context.Context, debtID string, updaterUserID string) error {
	args := m.Called(ctx, debtID, updaterUserID)
	return args.Error(0)
}
func (m *MockDebtService) DeleteDebtLine(ctx context.Context, debtID string) error {
	args := m.Called(ctx, debtID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.DebtSvcFacade = (*MockDebtService)(nil)

// --- Test Suite ---
type DebtHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockDebtService *MockDebtService
	jwtSecret       string
}

func (suite *DebtHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockDebtService = new(MockDebtService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterDebtRoutes(v1, suite.mockDebtService)
}

// generateTestToken creates a signed access token carrying the given role.
func (suite *DebtHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, time.Now().Add(1*time.Hour))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *DebtHandlerTestSuite) doJSON(method, url string, body any, userID string, role domain.UserRole) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, role))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

// Registering debt lines is open to every authenticated role. USER is create-only:
// the role gate must not block the POST.
func (suite *DebtHandlerTestSuite) TestCreateDebtLine_UserRoleCanCreate() {
	userID := uuid.NewString()
	req := dto.CreateDebtLineRequest{
		ConceptID: uuid.NewString(),
		StandID:   uuid.NewString(),
		DebtDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Monto:     decimal.NewFromInt(150),
	}
	expected := &domain.DebtLine{
		DebtID:    uuid.NewString(),
		StandID:   req.StandID,
		ConceptID: req.ConceptID,
		DebtDate:  req.DebtDate,
		Amount:    req.Monto,
		Active:    true,
	}

	suite.mockDebtService.On("CreateDebtLine",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateDebtLineRequest) bool {
			return r.StandID == req.StandID && r.Monto.Equal(req.Monto)
		}),
		userID,
	).Return(expected, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/debts", req, userID, domain.RoleUser)

	suite.Equal(http.StatusCreated, w.Code, "USER must be able to register a debt line")

	var responseBody dto.DebtLineResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal(expected.DebtID, responseBody.DebtID)

	suite.mockDebtService.AssertExpectations(suite.T())
}

// Editing a persisted line is gated: USER gets 403 and the service is never reached.
func (suite *DebtHandlerTestSuite) TestUpdateDebtLine_UserRoleForbidden() {
	userID := uuid.NewString()
	monto := decimal.NewFromInt(200)
	req := dto.UpdateDebtLineRequest{Monto: &monto}

	w := suite.doJSON(http.MethodPut, "/api/v1/debts/"+uuid.NewString(), req, userID, domain.RoleUser)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockDebtService.AssertNotCalled(suite.T(), "UpdateDebtLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DebtHandlerTestSuite) TestUpdateDebtLine_AdminRoleAllowed() {
	userID := uuid.NewString()
	debtID := uuid.NewString()
	monto := decimal.NewFromInt(200)
	req := dto.UpdateDebtLineRequest{Monto: &monto}
	updated := &domain.DebtLine{DebtID: debtID, Amount: monto, Active: true}

	suite.mockDebtService.On("UpdateDebtLine",
		mock.Anything, debtID, mock.AnythingOfType("dto.UpdateDebtLineRequest"), userID,
	).Return(updated, nil).Once()

	w := suite.doJSON(http.MethodPut, "/api/v1/debts/"+debtID, req, userID, domain.RoleAdmin)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockDebtService.AssertExpectations(suite.T())
}

// Hard deletes stay superadmin-only.
func (suite *DebtHandlerTestSuite) TestDeleteDebtLine_AdminRoleForbidden() {
	userID := uuid.NewString()

	w := suite.doJSON(http.MethodDelete, "/api/v1/debts/"+uuid.NewString(), nil, userID, domain.RoleAdmin)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockDebtService.AssertNotCalled(suite.T(), "DeleteDebtLine", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestDebtHandler(t *testing.T) {
	suite.Run(t, new(DebtHandlerTestSuite))
}
