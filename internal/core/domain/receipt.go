package domain

import (
	"github.com/shopspring/decimal"
)

// ReceiptType distinguishes income receipts (payments against debt lines) from
// expense receipts (free-form disbursements).
type ReceiptType string

const (
	Income  ReceiptType = "INCOME"
	Expense ReceiptType = "EXPENSE"
)

// Receipt is a persisted payment or disbursement event. Number is assigned from
// the per-type document counter inside the persisting transaction; the value a
// client saw beforehand is advisory only.
type Receipt struct {
	ReceiptID          string          `json:"receiptID"` // Primary key (UUID)
	Number             int64           `json:"number"`
	Type               ReceiptType     `json:"type"`
	StandID            *string         `json:"standID,omitempty"` // Income only
	PaymentMethodID    *string         `json:"paymentMethodID,omitempty"`
	CollectingEntityID *string         `json:"collectingEntityID,omitempty"`
	OperationNumber    *string         `json:"operationNumber,omitempty"`
	Total              decimal.Decimal `json:"total"`
	Details            []ReceiptDetail `json:"details,omitempty"`
	AuditFields
}

// ReceiptDetail is one line of a receipt. Income details reference exactly one
// DebtLine and carry the amount allocated to it plus concept/tenant snapshots for
// printing. Expense details carry a concept and a free-text description instead.
type ReceiptDetail struct {
	DetailID           string          `json:"detailID"`
	ReceiptID          string          `json:"receiptID"`
	DebtID             *string         `json:"debtID,omitempty"`    // Income: allocated debt line
	ConceptID          *string         `json:"conceptID,omitempty"` // Expense: disbursement concept
	ConceptDescription string          `json:"conceptDescription"`  // Snapshot for printing
	TenantName         *string         `json:"tenantName,omitempty"`
	Description        string          `json:"description"` // Expense free text
	Amount             decimal.Decimal `json:"amount"`
	AuditFields
}

// DocumentType identifies a DocumentNumbering counter.
type DocumentType string

const (
	IncomeReceiptDoc  DocumentType = "INCOME_RECEIPT"
	ExpenseReceiptDoc DocumentType = "EXPENSE_RECEIPT"
)

// DocumentNumbering is the process-wide monotonically increasing counter for one
// document type. Numbers are never reused.
type DocumentNumbering struct {
	DocumentType DocumentType `json:"documentType"`
	NextNumber   int64        `json:"nextNumber"`
}

// DocumentTypeFor maps a receipt type to its counter.
func DocumentTypeFor(t ReceiptType) DocumentType {
	if t == Expense {
		return ExpenseReceiptDoc
	}
	return IncomeReceiptDoc
}
