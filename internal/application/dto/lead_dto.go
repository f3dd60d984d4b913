package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLeadRequest entrada para crear un lead (estado inicial: new).
type CreateLeadRequest struct {
	LeadNumber     string           `json:"lead_number" validate:"required,max=50"`
	CompanyName    string           `json:"company_name" validate:"required,max=200"`
	ContactPerson  string           `json:"contact_person" validate:"omitempty,max=200"`
	Email          string           `json:"email" validate:"omitempty,email"`
	Phone          string           `json:"phone" validate:"omitempty,max=50"`
	IndustryID     *string          `json:"industry_id" validate:"omitempty,uuid"`
	Priority       string           `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	EstimatedValue *decimal.Decimal `json:"estimated_value"`
	AssignedTo     *string          `json:"assigned_to" validate:"omitempty,uuid"`
	SourceAuditID  *string          `json:"source_audit_id" validate:"omitempty,uuid"`
	Notes          string           `json:"notes" validate:"omitempty,max=4000"`
}

// UpdateLeadRequest patch parcial: solo se aplican los campos presentes.
// Status no es editable por esta vía; solo cambia por las operaciones de workflow.
type UpdateLeadRequest struct {
	LeadNumber     *string          `json:"lead_number" validate:"omitempty,max=50"`
	CompanyName    *string          `json:"company_name" validate:"omitempty,max=200"`
	ContactPerson  *string          `json:"contact_person" validate:"omitempty,max=200"`
	Email          *string          `json:"email" validate:"omitempty,email"`
	Phone          *string          `json:"phone" validate:"omitempty,max=50"`
	IndustryID     *string          `json:"industry_id" validate:"omitempty,uuid"`
	Priority       *string          `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	EstimatedValue *decimal.Decimal `json:"estimated_value"`
	AssignedTo     *string          `json:"assigned_to" validate:"omitempty,uuid"`
	Notes          *string          `json:"notes" validate:"omitempty,max=4000"`
}

// LeadResponse salida de un lead.
type LeadResponse struct {
	ID             string           `json:"id"`
	TenantID       string           `json:"tenant_id"`
	LeadNumber     string           `json:"lead_number"`
	CompanyName    string           `json:"company_name"`
	ContactPerson  string           `json:"contact_person"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	IndustryID     *string          `json:"industry_id,omitempty"`
	Status         string           `json:"status"`
	Priority       string           `json:"priority"`
	EstimatedValue *decimal.Decimal `json:"estimated_value,omitempty"`
	AssignedTo     *string          `json:"assigned_to,omitempty"`
	SourceAuditID  *string          `json:"source_audit_id,omitempty"`
	Notes          string           `json:"notes"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// LeadListResponse listado paginado de leads.
type LeadListResponse struct {
	Items []LeadResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
