package repositories

import (
	"context"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
)

// ReceiptReader defines read operations for receipts.
type ReceiptReader interface {
	// FindReceiptByID retrieves a receipt with its details.
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)

	// ListReceipts retrieves a paginated list of receipts of one type, newest first.
	ListReceipts(ctx context.Context, receiptType domain.ReceiptType, limit int, nextToken *string) ([]domain.Receipt, *string, error)
}

// ReceiptWriter defines write operations for receipts.
//
// The income methods own the allocation transaction: they lock the referenced debt
// lines, revalidate every requested amount against the fresh balance, increment
// totalPagado, settle lines whose balance reaches zero, draw the receipt number from
// the document counter and insert the receipt with its details — all in a single
// database transaction. On any failure nothing is written and no debt line is mutated.
type ReceiptWriter interface {
	// SaveIncomeReceipt persists a new income receipt and applies its allocations.
	// The returned receipt carries the authoritative number.
	SaveIncomeReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error)

	// SaveExpenseReceipt persists a new expense receipt with its details.
	SaveExpenseReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error)

	// UpdateIncomeReceipt replaces an income receipt's header and detail set. The
	// previous allocations are backed out and the new ones applied under the same
	// transaction and validation as SaveIncomeReceipt. The receipt number is kept.
	UpdateIncomeReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error)
}

// ReceiptRepositoryFacade combines all receipt repository interfaces.
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}

// NumberingRepositoryFacade reads document counters. The advisory read never
// consumes a number; assignment happens only inside the receipt-persisting
// transaction.
type NumberingRepositoryFacade interface {
	// PeekNextNumber returns the number the next persisted document of this type is
	// expected to get.
	PeekNextNumber(ctx context.Context, docType domain.DocumentType) (int64, error)
}
