package entity

import "time"

// Industry catálogo de industrias por tenant (CRUD simple, sin ciclo de vida).
type Industry struct {
	ID          string
	TenantID    string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AuditType catálogo de tipos de auditoría por tenant.
type AuditType struct {
	ID          string
	TenantID    string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
