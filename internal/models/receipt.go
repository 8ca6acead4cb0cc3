package models

import (
	"github.com/shopspring/decimal"
)

// Receipt is the receipts table row.
type Receipt struct {
	ReceiptID          string          `db:"receipt_id"`
	Number             int64           `db:"number"`
	Type               string          `db:"type"`
	StandID            *string         `db:"stand_id"`
	PaymentMethodID    *string         `db:"payment_method_id"`
	CollectingEntityID *string         `db:"collecting_entity_id"`
	OperationNumber    *string         `db:"operation_number"`
	Total              decimal.Decimal `db:"total"`
	AuditFields
}

// ReceiptDetail is the receipt_details table row.
type ReceiptDetail struct {
	DetailID           string          `db:"detail_id"`
	ReceiptID          string          `db:"receipt_id"`
	DebtID             *string         `db:"debt_id"`
	ConceptID          *string         `db:"concept_id"`
	ConceptDescription string          `db:"concept_description"`
	TenantName         *string         `db:"tenant_name"`
	Description        string          `db:"description"`
	Amount             decimal.Decimal `db:"amount"`
	AuditFields
}

// DocumentNumbering is the document_numberings counter row.
type DocumentNumbering struct {
	DocumentType string `db:"document_type"`
	NextNumber   int64  `db:"next_number"`
	AuditFields
}
