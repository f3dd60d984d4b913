package entity

import "time"

// Tenant representa una organización del sistema. Es la frontera de aislamiento:
// toda entidad de negocio lleva TenantID y toda consulta filtra por él.
type Tenant struct {
	ID        string
	Name      string
	Subdomain *string // único cuando está presente; nil = sin subdominio
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
