package dto

import "time"

// CreateLookupRequest entrada para crear una Industry o un AuditType.
type CreateLookupRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// UpdateLookupRequest patch parcial de un catálogo.
type UpdateLookupRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// LookupResponse salida de Industry / AuditType.
type LookupResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LookupListResponse listado paginado de catálogos.
type LookupListResponse struct {
	Items []LookupResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
