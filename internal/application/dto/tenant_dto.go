package dto

import "time"

// CreateTenantRequest entrada para crear un tenant (solo master_admin).
type CreateTenantRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Subdomain string `json:"subdomain" validate:"omitempty,alphanum,max=63"`
}

// UpdateTenantRequest patch parcial de tenant.
type UpdateTenantRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	Subdomain *string `json:"subdomain" validate:"omitempty,alphanum,max=63"`
	Active    *bool   `json:"active"`
}

// TenantResponse salida de un tenant.
type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subdomain *string   `json:"subdomain,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TenantListResponse listado paginado de tenants.
type TenantListResponse struct {
	Items []TenantResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
