package models

// PaymentMethod is the payment_methods table row.
type PaymentMethod struct {
	PaymentMethodID string `db:"payment_method_id"`
	Name            string `db:"name"`
	Active          bool   `db:"active"`
	AuditFields
}

// CollectingEntity is the collecting_entities table row.
type CollectingEntity struct {
	EntityID string `db:"entity_id"`
	Name     string `db:"name"`
	Active   bool   `db:"active"`
	AuditFields
}
