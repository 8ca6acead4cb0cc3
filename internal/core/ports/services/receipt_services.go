package services

import (
	"context"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
	"github.com/galeria-sm/stands_backend/internal/dto"
)

// ReceiptSvcFacade exposes the Receipt Allocator operations.
type ReceiptSvcFacade interface {
	// CreateIncomeReceipt validates the draft (every violation reported, not just the
	// first) and persists the receipt with its allocations atomically. On success the
	// referenced debt lines' totalPagado is incremented and lines reaching zero
	// balance are settled.
	CreateIncomeReceipt(ctx context.Context, req dto.CreateIncomeReceiptRequest, creatorUserID string) (*domain.Receipt, error)

	// CreateExpenseReceipt persists a disbursement receipt. No debt line linkage.
	CreateExpenseReceipt(ctx context.Context, req dto.CreateExpenseReceiptRequest, creatorUserID string) (*domain.Receipt, error)

	// UpdateIncomeReceipt replaces the detail set of an existing income receipt under
	// the same validation, backing out the previous allocations. The receipt keeps
	// its number and the print side effect is not re-triggered.
	UpdateIncomeReceipt(ctx context.Context, receiptID string, req dto.CreateIncomeReceiptRequest, updaterUserID string) (*domain.Receipt, error)

	// GetReceiptByID retrieves a receipt with its details.
	GetReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)

	// ListReceipts retrieves a paginated listing of one receipt type, newest first.
	ListReceipts(ctx context.Context, receiptType domain.ReceiptType, params dto.ListReceiptsParams) ([]domain.Receipt, *string, error)

	// PeekNextNumber reads the advisory next number for a document type. The
	// authoritative number is assigned at persistence time.
	PeekNextNumber(ctx context.Context, docType domain.DocumentType) (int64, error)
}
