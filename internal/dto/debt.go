package dto

import (
	"time"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtLineRequest registers a single debt obligation.
type CreateDebtLineRequest struct {
	ConceptID string          `json:"conceptID" binding:"required"`
	StandID   string          `json:"standID" binding:"required"`
	DebtDate  time.Time       `json:"debtDate" binding:"required"`
	Monto     decimal.Decimal `json:"monto" binding:"required"`
	Mora      decimal.Decimal `json:"mora"`
	// TenantID, when set, must be the stand's current tenant and the concept must
	// have tenantPays=true.
	TenantID *string `json:"tenantID,omitempty"`
}

// BatchDebtEntry is one stand's amounts within a batch registration.
type BatchDebtEntry struct {
	StandID string          `json:"standID" binding:"required"`
	Monto   decimal.Decimal `json:"monto"`
	Mora    decimal.Decimal `json:"mora"`
	// SuppressTenant skips the responsible-tenant snapshot for this line (the
	// "remove inquilino before submit" override).
	SuppressTenant bool `json:"suppressTenant"`
}

// BatchCreateDebtLinesRequest registers one debt line per stand with a non-zero
// amount. Entries with monto and mora both zero are skipped, not errored.
type BatchCreateDebtLinesRequest struct {
	ConceptID string           `json:"conceptID" binding:"required"`
	DebtDate  time.Time        `json:"debtDate" binding:"required"`
	Entries   []BatchDebtEntry `json:"entries" binding:"required,min=1,dive"`
}

// BatchDebtFailure reports one stand whose line could not be created. Lines are
// independent, so sibling successes are kept.
type BatchDebtFailure struct {
	StandID string `json:"standID"`
	Error   string `json:"error"`
}

// BatchDebtResult is the partial-success report of a batch registration.
type BatchDebtResult struct {
	Created  []domain.DebtLine  `json:"created"`
	Skipped  []string           `json:"skipped"` // Stand IDs with zero amounts
	Failures []BatchDebtFailure `json:"failures"`
}

// UpdateDebtLineRequest edits a debt line directly. Nil fields are left unchanged.
type UpdateDebtLineRequest struct {
	ConceptID *string          `json:"conceptID,omitempty"`
	StandID   *string          `json:"standID,omitempty"`
	DebtDate  *time.Time       `json:"debtDate,omitempty"`
	Monto     *decimal.Decimal `json:"monto,omitempty"`
	Mora      *decimal.Decimal `json:"mora,omitempty"`
}

// ListDebtLinesParams filters and paginates the debt line listing.
type ListDebtLinesParams struct {
	StandID   *string `form:"standId"`
	ConceptID *string `form:"conceptFilter"`
	Active    *bool   `form:"active"`
	Settled   *bool   `form:"settled"`
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// DebtLineResponse is the wire shape of a debt line, including the computed balance.
type DebtLineResponse struct {
	DebtID      string               `json:"debtID"`
	StandID     string               `json:"standID"`
	ConceptID   string               `json:"conceptID"`
	DebtDate    time.Time            `json:"debtDate"`
	Monto       decimal.Decimal      `json:"monto"`
	Mora        decimal.Decimal      `json:"mora"`
	TotalPagado decimal.Decimal      `json:"totalPagado"`
	Balance     decimal.Decimal      `json:"balance"`
	Settled     bool                 `json:"estado"`
	Active      bool                 `json:"active"`
	TenantID    *string              `json:"tenantID,omitempty"`
	Concept     *domain.DebtConcept  `json:"concept,omitempty"`
	Stand       *domain.Stand        `json:"stand,omitempty"`
	Tenant      *domain.Tenant       `json:"tenantResponsible,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	CreatedBy   string               `json:"createdBy"`
}

// ListDebtLinesResponse wraps a page of debt lines.
type ListDebtLinesResponse struct {
	DebtLines []DebtLineResponse `json:"debtLines"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToDebtLineResponse converts a domain.DebtLine to its wire shape.
func ToDebtLineResponse(d *domain.DebtLine) DebtLineResponse {
	return DebtLineResponse{
		DebtID:      d.DebtID,
		StandID:     d.StandID,
		ConceptID:   d.ConceptID,
		DebtDate:    d.DebtDate,
		Monto:       d.Amount,
		Mora:        d.LateFee,
		TotalPagado: d.TotalPaid,
		Balance:     d.Balance(),
		Settled:     d.Settled,
		Active:      d.Active,
		TenantID:    d.TenantID,
		Concept:     d.Concept,
		Stand:       d.Stand,
		Tenant:      d.Tenant,
		CreatedAt:   d.CreatedAt,
		CreatedBy:   d.CreatedBy,
	}
}

// ToDebtLineResponses converts a slice of debt lines.
func ToDebtLineResponses(lines []domain.DebtLine) []DebtLineResponse {
	responses := make([]DebtLineResponse, len(lines))
	for i := range lines {
		responses[i] = ToDebtLineResponse(&lines[i])
	}
	return responses
}
