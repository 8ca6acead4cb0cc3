package domain

// Stand is a physical rental unit in the building.
type Stand struct {
	StandID     string  `json:"standID"` // Primary key (UUID)
	Description string  `json:"description"`
	Level       int     `json:"level"`              // Floor number
	ClientID    *string `json:"clientID,omitempty"` // Owning client, 0-or-1
	Active      bool    `json:"active"`
	AuditFields
}

// Client owns one or more stands. Distinct from the tenant renting a stand.
type Client struct {
	ClientID string `json:"clientID"`
	Name     string `json:"name"`
	Document string `json:"document"` // National ID / tax document, free-form
	Active   bool   `json:"active"`
	AuditFields
}
