package mapping

import (
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	"github.com/galeria-sm/stands_backend/internal/models"
)

// ToModelStand converts a domain Stand to a model Stand
func ToModelStand(d domain.Stand) models.Stand {
	return models.Stand{
		StandID:     d.StandID,
		Description: d.Description,
		Level:       d.Level,
		ClientID:    d.ClientID,
		Active:      d.Active,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStand converts a model Stand to a domain Stand
func ToDomainStand(m models.Stand) domain.Stand {
	return domain.Stand{
		StandID:     m.StandID,
		Description: m.Description,
		Level:       m.Level,
		ClientID:    m.ClientID,
		Active:      m.Active,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:    d.ClientID,
		Name:        d.Name,
		Document:    d.Document,
		Active:      d.Active,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:    m.ClientID,
		Name:        m.Name,
		Document:    m.Document,
		Active:      m.Active,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
