package dto

import "time"

// CreateAuditRequest entrada para crear una auditoría (estado inicial: draft).
type CreateAuditRequest struct {
	AuditNumber  string    `json:"audit_number" validate:"required,max=50"`
	CustomerName string    `json:"customer_name" validate:"required,max=200"`
	SiteLocation string    `json:"site_location" validate:"omitempty,max=200"`
	IndustryID   *string   `json:"industry_id" validate:"omitempty,uuid"`
	AuditTypeID  *string   `json:"audit_type_id" validate:"omitempty,uuid"`
	AuditorID    *string   `json:"auditor_id" validate:"omitempty,uuid"`
	AuditorName  string    `json:"auditor_name" validate:"omitempty,max=200"`
	AuditDate    time.Time `json:"audit_date"`
	GeoLocation  *string   `json:"geo_location" validate:"omitempty,max=100"`
}

// UpdateAuditRequest patch parcial: solo se aplican los campos presentes.
// Status no es editable por esta vía; solo cambia por las operaciones de workflow.
type UpdateAuditRequest struct {
	AuditNumber  *string    `json:"audit_number" validate:"omitempty,max=50"`
	CustomerName *string    `json:"customer_name" validate:"omitempty,max=200"`
	SiteLocation *string    `json:"site_location" validate:"omitempty,max=200"`
	IndustryID   *string    `json:"industry_id" validate:"omitempty,uuid"`
	AuditTypeID  *string    `json:"audit_type_id" validate:"omitempty,uuid"`
	AuditorID    *string    `json:"auditor_id" validate:"omitempty,uuid"`
	AuditorName  *string    `json:"auditor_name" validate:"omitempty,max=200"`
	AuditDate    *time.Time `json:"audit_date"`
	GeoLocation  *string    `json:"geo_location" validate:"omitempty,max=100"`
}

// AuditResponse salida de una auditoría.
type AuditResponse struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id"`
	AuditNumber  string    `json:"audit_number"`
	CustomerName string    `json:"customer_name"`
	SiteLocation string    `json:"site_location"`
	IndustryID   *string   `json:"industry_id,omitempty"`
	AuditTypeID  *string   `json:"audit_type_id,omitempty"`
	AuditorID    *string   `json:"auditor_id,omitempty"`
	AuditorName  string    `json:"auditor_name"`
	AuditDate    time.Time `json:"audit_date"`
	Status       string    `json:"status"`
	GeoLocation  *string   `json:"geo_location,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuditListResponse listado paginado de auditorías.
type AuditListResponse struct {
	Items []AuditResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
