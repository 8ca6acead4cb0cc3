package domain

// PaymentMethod is a small catalog entity ("cash", "bank transfer", "POS"...).
type PaymentMethod struct {
	PaymentMethodID string `json:"paymentMethodID"`
	Name            string `json:"name"`
	Active          bool   `json:"active"`
	AuditFields
}

// CollectingEntity is the optional bank/agency through which an income receipt
// was collected.
type CollectingEntity struct {
	EntityID string `json:"entityID"`
	Name     string `json:"name"`
	Active   bool   `json:"active"`
	AuditFields
}
