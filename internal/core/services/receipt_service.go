package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/galeria-sm/stands_backend/internal/apperrors"
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portsrepo "github.com/galeria-sm/stands_backend/internal/core/ports/repositories"
	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
	"github.com/galeria-sm/stands_backend/internal/dto"
	"github.com/galeria-sm/stands_backend/internal/middleware"
)

// receiptService implements the Receipt Allocator operations.
type receiptService struct {
	receiptRepo   portsrepo.ReceiptRepositoryFacade
	numberingRepo portsrepo.NumberingRepositoryFacade
	debtRepo      portsrepo.DebtRepositoryFacade
	conceptRepo   portsrepo.ConceptRepositoryFacade
	standRepo     portsrepo.StandRepositoryFacade
	catalogRepo   portsrepo.CatalogRepositoryFacade
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(
	receiptRepo portsrepo.ReceiptRepositoryFacade,
	numberingRepo portsrepo.NumberingRepositoryFacade,
	debtRepo portsrepo.DebtRepositoryFacade,
	conceptRepo portsrepo.ConceptRepositoryFacade,
	standRepo portsrepo.StandRepositoryFacade,
	catalogRepo portsrepo.CatalogRepositoryFacade,
) portssvc.ReceiptSvcFacade {
	return &receiptService{
		receiptRepo:   receiptRepo,
		numberingRepo: numberingRepo,
		debtRepo:      debtRepo,
		conceptRepo:   conceptRepo,
		standRepo:     standRepo,
		catalogRepo:   catalogRepo,
	}
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// buildIncomeDetails validates the whole draft, accumulating every violation
// instead of stopping at the first, and returns the detail rows with their
// concept/tenant snapshots. The balance check here works on the balances the
// service can see; the repository repeats it against locked rows at persistence
// time, which is the authoritative check.
func (s *receiptService) buildIncomeDetails(ctx context.Context, standID string, reqDetails []dto.IncomeDetailRequest, userID string, now time.Time) ([]domain.ReceiptDetail, decimal.Decimal, error) {
	validation := apperrors.NewValidationError()
	if len(reqDetails) == 0 {
		validation.Add("an income receipt requires at least one allocation")
		return nil, decimal.Zero, validation
	}

	seen := make(map[string]bool, len(reqDetails))
	details := make([]domain.ReceiptDetail, 0, len(reqDetails))
	total := decimal.Zero

	for i, d := range reqDetails {
		if seen[d.DebtID] {
			validation.Add("detail %d: debt line %s appears more than once", i, d.DebtID)
			continue
		}
		seen[d.DebtID] = true

		if !d.AmountPaid.IsPositive() {
			validation.Add("detail %d: amount paid must be positive", i)
		}

		line, err := s.debtRepo.FindDebtLineByID(ctx, d.DebtID)
		if err != nil {
			validation.Add("detail %d: debt line %s not found", i, d.DebtID)
			continue
		}
		if !line.Active {
			validation.Add("detail %d: debt line %s is inactive", i, d.DebtID)
		}
		if line.Settled {
			validation.Add("detail %d: debt line %s is already settled", i, d.DebtID)
		}
		if line.StandID != standID {
			validation.Add("detail %d: debt line %s belongs to stand %s, not %s", i, d.DebtID, line.StandID, standID)
		}
		if d.AmountPaid.GreaterThan(line.Balance()) {
			validation.Add("detail %d: amount %s exceeds the outstanding balance %s of debt line %s",
				i, d.AmountPaid.String(), line.Balance().String(), d.DebtID)
		}

		conceptDescription := ""
		if line.Concept != nil {
			conceptDescription = line.Concept.Description
		}
		var tenantName *string
		if line.Tenant != nil {
			name := line.Tenant.Name
			tenantName = &name
		}

		debtID := d.DebtID
		details = append(details, domain.ReceiptDetail{
			DetailID:           uuid.NewString(),
			DebtID:             &debtID,
			ConceptDescription: conceptDescription,
			TenantName:         tenantName,
			Amount:             d.AmountPaid,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		})
		total = total.Add(d.AmountPaid)
	}

	if validation.HasViolations() {
		return nil, decimal.Zero, validation
	}
	return details, total, nil
}

// validateIncomeHeader checks the referenced catalog entries and stand.
func (s *receiptService) validateIncomeHeader(ctx context.Context, req dto.CreateIncomeReceiptRequest) error {
	if _, err := s.standRepo.FindStandByID(ctx, req.StandID); err != nil {
		return fmt.Errorf("failed to fetch stand %s: %w", req.StandID, err)
	}
	if _, err := s.catalogRepo.FindPaymentMethodByID(ctx, req.PaymentMethodID); err != nil {
		return fmt.Errorf("failed to fetch payment method %s: %w", req.PaymentMethodID, err)
	}
	if req.CollectingEntityID != nil {
		if _, err := s.catalogRepo.FindCollectingEntityByID(ctx, *req.CollectingEntityID); err != nil {
			return fmt.Errorf("failed to fetch collecting entity %s: %w", *req.CollectingEntityID, err)
		}
	}
	return nil
}

// CreateIncomeReceipt validates the draft and persists receipt plus allocations
// atomically. The repository assigns the number and applies totalPagado increments
// under row locks; any failure leaves the ledger untouched.
// Implements portssvc.ReceiptSvcFacade
func (s *receiptService) CreateIncomeReceipt(ctx context.Context, req dto.CreateIncomeReceiptRequest, creatorUserID string) (*domain.Receipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateIncomeHeader(ctx, req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	details, total, err := s.buildIncomeDetails(ctx, req.StandID, req.Details, creatorUserID, now)
	if err != nil {
		return nil, err
	}

	standID := req.StandID
	paymentMethodID := req.PaymentMethodID
	receipt := domain.Receipt{
		ReceiptID:          uuid.NewString(),
		Type:               domain.Income,
		StandID:            &standID,
		PaymentMethodID:    &paymentMethodID,
		CollectingEntityID: req.CollectingEntityID,
		OperationNumber:    req.OperationNumber,
		Total:              total,
		Details:            details,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	saved, err := s.receiptRepo.SaveIncomeReceipt(ctx, receipt)
	if err != nil {
		logger.Error("Failed to save income receipt", slog.String("error", err.Error()), slog.String("stand_id", req.StandID))
		return nil, fmt.Errorf("failed to save income receipt: %w", err)
	}

	logger.Info("Income receipt created",
		slog.String("receipt_id", saved.ReceiptID),
		slog.Int64("number", saved.Number),
		slog.String("total", saved.Total.String()))
	return saved, nil
}

// CreateExpenseReceipt persists a disbursement receipt. Expense details are
// free-form against a concept; no debt line is touched.
// Implements portssvc.ReceiptSvcFacade
func (s *receiptService) CreateExpenseReceipt(ctx context.Context, req dto.CreateExpenseReceiptRequest, creatorUserID string) (*domain.Receipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	validation := apperrors.NewValidationError()
	if len(req.Details) == 0 {
		validation.Add("an expense receipt requires at least one detail")
		return nil, validation
	}

	now := time.Now().UTC()
	details := make([]domain.ReceiptDetail, 0, len(req.Details))
	total := decimal.Zero
	for i, d := range req.Details {
		if !d.Amount.IsPositive() {
			validation.Add("detail %d: amount must be positive", i)
		}
		concept, err := s.conceptRepo.FindConceptByID(ctx, d.ConceptID)
		if err != nil {
			validation.Add("detail %d: concept %s not found", i, d.ConceptID)
			continue
		}

		conceptID := d.ConceptID
		details = append(details, domain.ReceiptDetail{
			DetailID:           uuid.NewString(),
			ConceptID:          &conceptID,
			ConceptDescription: concept.Description,
			Description:        d.Description,
			Amount:             d.Amount,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		})
		total = total.Add(d.Amount)
	}
	if validation.HasViolations() {
		return nil, validation
	}

	receipt := domain.Receipt{
		ReceiptID: uuid.NewString(),
		Type:      domain.Expense,
		Total:     total,
		Details:   details,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	saved, err := s.receiptRepo.SaveExpenseReceipt(ctx, receipt)
	if err != nil {
		logger.Error("Failed to save expense receipt", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save expense receipt: %w", err)
	}

	logger.Info("Expense receipt created", slog.String("receipt_id", saved.ReceiptID), slog.Int64("number", saved.Number))
	return saved, nil
}

// UpdateIncomeReceipt replaces the detail set of an existing income receipt. The
// previous allocations are backed out inside the repository transaction, so the
// draft is validated against balances as they stand without this receipt. The
// number is kept and printing is not re-triggered.
// Implements portssvc.ReceiptSvcFacade
func (s *receiptService) UpdateIncomeReceipt(ctx context.Context, receiptID string, req dto.CreateIncomeReceiptRequest, updaterUserID string) (*domain.Receipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if existing.Type != domain.Income {
		return nil, fmt.Errorf("%w: receipt %s is not an income receipt", apperrors.ErrValidation, receiptID)
	}

	if err := s.validateIncomeHeader(ctx, req); err != nil {
		return nil, err
	}

	// Balance checks against effective balances (with this receipt's previous
	// allocations backed out) happen in the repository under locks; the pre-check
	// here covers existence, stand membership and duplicates.
	now := time.Now().UTC()
	validation := apperrors.NewValidationError()
	if len(req.Details) == 0 {
		validation.Add("an income receipt requires at least one allocation")
		return nil, validation
	}
	seen := make(map[string]bool, len(req.Details))
	details := make([]domain.ReceiptDetail, 0, len(req.Details))
	total := decimal.Zero
	for i, d := range req.Details {
		if seen[d.DebtID] {
			validation.Add("detail %d: debt line %s appears more than once", i, d.DebtID)
			continue
		}
		seen[d.DebtID] = true
		if !d.AmountPaid.IsPositive() {
			validation.Add("detail %d: amount paid must be positive", i)
		}
		line, err := s.debtRepo.FindDebtLineByID(ctx, d.DebtID)
		if err != nil {
			validation.Add("detail %d: debt line %s not found", i, d.DebtID)
			continue
		}
		if !line.Active {
			validation.Add("detail %d: debt line %s is inactive", i, d.DebtID)
		}
		if line.StandID != req.StandID {
			validation.Add("detail %d: debt line %s belongs to stand %s, not %s", i, d.DebtID, line.StandID, req.StandID)
		}

		conceptDescription := ""
		if line.Concept != nil {
			conceptDescription = line.Concept.Description
		}
		var tenantName *string
		if line.Tenant != nil {
			name := line.Tenant.Name
			tenantName = &name
		}
		debtID := d.DebtID
		details = append(details, domain.ReceiptDetail{
			DetailID:           uuid.NewString(),
			ReceiptID:          receiptID,
			DebtID:             &debtID,
			ConceptDescription: conceptDescription,
			TenantName:         tenantName,
			Amount:             d.AmountPaid,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     updaterUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: updaterUserID,
			},
		})
		total = total.Add(d.AmountPaid)
	}
	if validation.HasViolations() {
		return nil, validation
	}

	standID := req.StandID
	paymentMethodID := req.PaymentMethodID
	receipt := domain.Receipt{
		ReceiptID:          receiptID,
		Number:             existing.Number,
		Type:               domain.Income,
		StandID:            &standID,
		PaymentMethodID:    &paymentMethodID,
		CollectingEntityID: req.CollectingEntityID,
		OperationNumber:    req.OperationNumber,
		Total:              total,
		Details:            details,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			CreatedBy:     existing.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterUserID,
		},
	}

	saved, err := s.receiptRepo.UpdateIncomeReceipt(ctx, receipt)
	if err != nil {
		logger.Error("Failed to update income receipt", slog.String("error", err.Error()), slog.String("receipt_id", receiptID))
		return nil, fmt.Errorf("failed to update income receipt: %w", err)
	}

	logger.Info("Income receipt updated", slog.String("receipt_id", receiptID), slog.Int64("number", saved.Number))
	return saved, nil
}

// GetReceiptByID retrieves a receipt with its details.
// Implements portssvc.ReceiptSvcFacade
func (s *receiptService) GetReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to find receipt %s: %w", receiptID, err)
	}
	return receipt, nil
}

// ListReceipts retrieves one page of receipts of one type, newest first.
// Implements portssvc.ReceiptSvcFacade
func (s *receiptService) ListReceipts(ctx context.Context, receiptType domain.ReceiptType, params dto.ListReceiptsParams) ([]domain.Receipt, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	receipts, nextToken, err := s.receiptRepo.ListReceipts(ctx, receiptType, limit, params.NextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	return receipts, nextToken, nil
}

// PeekNextNumber reads the advisory next number without consuming it.
// Implements portssvc.ReceiptSvcFacade
func (s *receiptService) PeekNextNumber(ctx context.Context, docType domain.DocumentType) (int64, error) {
	n, err := s.numberingRepo.PeekNextNumber(ctx, docType)
	if err != nil {
		return 0, fmt.Errorf("failed to peek next number for %s: %w", docType, err)
	}
	return n, nil
}
