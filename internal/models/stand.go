package models

// Stand is the stands table row.
type Stand struct {
	StandID     string  `db:"stand_id"`
	Description string  `db:"description"`
	Level       int     `db:"level"`
	ClientID    *string `db:"client_id"`
	Active      bool    `db:"active"`
	AuditFields
}

// Client is the clients table row.
type Client struct {
	ClientID string `db:"client_id"`
	Name     string `db:"name"`
	Document string `db:"document"`
	Active   bool   `db:"active"`
	AuditFields
}
