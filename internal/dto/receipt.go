package dto

import (
	"time"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IncomeDetailRequest allocates an amount to one debt line.
type IncomeDetailRequest struct {
	DebtID     string          `json:"debtLineId" binding:"required"`
	AmountPaid decimal.Decimal `json:"amountPaid" binding:"required"`
}

// CreateIncomeReceiptRequest is the submit payload of an income receipt draft.
// Client-side caps on amountPaid are a UX convenience only; the server revalidates
// every amount against the fresh balance at persistence time.
type CreateIncomeReceiptRequest struct {
	PaymentMethodID    string                `json:"paymentMethodId" binding:"required"`
	StandID            string                `json:"standId" binding:"required"`
	CollectingEntityID *string               `json:"collectingEntityId,omitempty"`
	OperationNumber    *string               `json:"operationNumber,omitempty"`
	Details            []IncomeDetailRequest `json:"details" binding:"required,dive"`
}

// ExpenseDetailRequest is one disbursement line.
type ExpenseDetailRequest struct {
	ConceptID   string          `json:"conceptId" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// CreateExpenseReceiptRequest is the submit payload of an expense receipt.
type CreateExpenseReceiptRequest struct {
	Details []ExpenseDetailRequest `json:"details" binding:"required,dive"`
}

// ListReceiptsParams paginates the receipt listing for one document type.
type ListReceiptsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ReceiptDetailResponse is the wire shape of one receipt line.
type ReceiptDetailResponse struct {
	DetailID           string          `json:"detailID"`
	DebtID             *string         `json:"debtLineId,omitempty"`
	ConceptID          *string         `json:"conceptId,omitempty"`
	ConceptDescription string          `json:"conceptDescription"`
	TenantName         *string         `json:"tenantName,omitempty"`
	Description        string          `json:"description,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
}

// ReceiptResponse is the wire shape of a persisted receipt. Printable marks newly
// created receipts; edits never re-trigger the print side effect.
type ReceiptResponse struct {
	ReceiptID          string                  `json:"receiptID"`
	Number             int64                   `json:"number"`
	Type               domain.ReceiptType      `json:"type"`
	StandID            *string                 `json:"standId,omitempty"`
	PaymentMethodID    *string                 `json:"paymentMethodId,omitempty"`
	CollectingEntityID *string                 `json:"collectingEntityId,omitempty"`
	OperationNumber    *string                 `json:"operationNumber,omitempty"`
	Total              decimal.Decimal         `json:"total"`
	Details            []ReceiptDetailResponse `json:"details"`
	Printable          bool                    `json:"printable"`
	CreatedAt          time.Time               `json:"createdAt"`
	CreatedBy          string                  `json:"createdBy"`
}

// ListReceiptsResponse wraps a page of receipts.
type ListReceiptsResponse struct {
	Receipts  []ReceiptResponse `json:"receipts"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// NextNumberResponse is the advisory counter read.
type NextNumberResponse struct {
	DocumentType domain.DocumentType `json:"documentType"`
	NextNumber   int64               `json:"nextNumber"`
}

// ToReceiptResponse converts a domain.Receipt to its wire shape.
func ToReceiptResponse(r *domain.Receipt, printable bool) ReceiptResponse {
	details := make([]ReceiptDetailResponse, len(r.Details))
	for i, d := range r.Details {
		details[i] = ReceiptDetailResponse{
			DetailID:           d.DetailID,
			DebtID:             d.DebtID,
			ConceptID:          d.ConceptID,
			ConceptDescription: d.ConceptDescription,
			TenantName:         d.TenantName,
			Description:        d.Description,
			Amount:             d.Amount,
		}
	}
	return ReceiptResponse{
		ReceiptID:          r.ReceiptID,
		Number:             r.Number,
		Type:               r.Type,
		StandID:            r.StandID,
		PaymentMethodID:    r.PaymentMethodID,
		CollectingEntityID: r.CollectingEntityID,
		OperationNumber:    r.OperationNumber,
		Total:              r.Total,
		Details:            details,
		Printable:          printable,
		CreatedAt:          r.CreatedAt,
		CreatedBy:          r.CreatedBy,
	}
}

// ToReceiptResponses converts a slice of receipts (never printable: only freshly
// created receipts print).
func ToReceiptResponses(receipts []domain.Receipt) []ReceiptResponse {
	responses := make([]ReceiptResponse, len(receipts))
	for i := range receipts {
		responses[i] = ToReceiptResponse(&receipts[i], false)
	}
	return responses
}
