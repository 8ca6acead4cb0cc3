package mapping

import (
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	"github.com/galeria-sm/stands_backend/internal/models"
)

// ToModelReceipt converts a domain Receipt to a model Receipt
func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:          d.ReceiptID,
		Number:             d.Number,
		Type:               string(d.Type),
		StandID:            d.StandID,
		PaymentMethodID:    d.PaymentMethodID,
		CollectingEntityID: d.CollectingEntityID,
		OperationNumber:    d.OperationNumber,
		Total:              d.Total,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReceipt converts a model Receipt to a domain Receipt. Details are
// attached by the repository.
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:          m.ReceiptID,
		Number:             m.Number,
		Type:               domain.ReceiptType(m.Type),
		StandID:            m.StandID,
		PaymentMethodID:    m.PaymentMethodID,
		CollectingEntityID: m.CollectingEntityID,
		OperationNumber:    m.OperationNumber,
		Total:              m.Total,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelReceiptDetail converts a domain ReceiptDetail to a model ReceiptDetail
func ToModelReceiptDetail(d domain.ReceiptDetail) models.ReceiptDetail {
	return models.ReceiptDetail{
		DetailID:           d.DetailID,
		ReceiptID:          d.ReceiptID,
		DebtID:             d.DebtID,
		ConceptID:          d.ConceptID,
		ConceptDescription: d.ConceptDescription,
		TenantName:         d.TenantName,
		Description:        d.Description,
		Amount:             d.Amount,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReceiptDetail converts a model ReceiptDetail to a domain ReceiptDetail
func ToDomainReceiptDetail(m models.ReceiptDetail) domain.ReceiptDetail {
	return domain.ReceiptDetail{
		DetailID:           m.DetailID,
		ReceiptID:          m.ReceiptID,
		DebtID:             m.DebtID,
		ConceptID:          m.ConceptID,
		ConceptDescription: m.ConceptDescription,
		TenantName:         m.TenantName,
		Description:        m.Description,
		Amount:             m.Amount,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainReceiptDetailSlice converts a slice of model receipt details.
func ToDomainReceiptDetailSlice(ms []models.ReceiptDetail) []domain.ReceiptDetail {
	out := make([]domain.ReceiptDetail, len(ms))
	for i, m := range ms {
		out[i] = ToDomainReceiptDetail(m)
	}
	return out
}
