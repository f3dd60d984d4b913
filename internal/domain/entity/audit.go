package entity

import "time"

// Estados válidos de un Audit. El rechazo no es un estado: es la transición
// review → draft. "closed" es terminal.
const (
	AuditStatusDraft    = "draft"
	AuditStatusReview   = "review"
	AuditStatusApproved = "approved"
	AuditStatusClosed   = "closed"
)

// Audit representa una auditoría de un cliente en un sitio.
// Status es el único campo con invariantes de transición; el resto es editable
// mientras la auditoría no esté cerrada.
type Audit struct {
	ID           string
	TenantID     string
	AuditNumber  string
	CustomerName string
	SiteLocation string
	IndustryID   *string
	AuditTypeID  *string
	AuditorID    *string
	AuditorName  string
	AuditDate    time.Time
	Status       string // draft, review, approved, closed
	GeoLocation  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Editable indica si los campos de negocio (no Status) aceptan cambios.
func (a *Audit) Editable() bool {
	return a.Status != AuditStatusClosed
}
