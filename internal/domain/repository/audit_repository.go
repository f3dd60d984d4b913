package repository

import (
	"context"

	"github.com/jhoicas/Auditoria-api/internal/domain/entity"
)

// AuditRepository define el puerto de persistencia para Audit.
//
// Todas las operaciones exigen tenantID y lo conjugan con el predicado propio:
// un id de otro tenant se comporta como inexistente (nil), nunca como fuga.
type AuditRepository interface {
	Create(ctx context.Context, audit *entity.Audit) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Audit, error)
	ListByTenant(ctx context.Context, tenantID, status string, limit, offset int) ([]*entity.Audit, error)
	Update(ctx context.Context, audit *entity.Audit) error
	Delete(ctx context.Context, tenantID, id string) error
	// UpdateStatus aplica el guard y la escritura en una sola sentencia
	// condicional: cambia a `to` solo si el estado actual está en `from`.
	// Devuelve la entidad actualizada, o nil si ninguna fila cumplió el
	// predicado (no existe en el tenant, o el estado no coincide).
	UpdateStatus(ctx context.Context, tenantID, id string, from []string, to string) (*entity.Audit, error)
}

// LeadRepository define el puerto de persistencia para Lead. Mismo contrato de
// scoping y de UpdateStatus condicional que AuditRepository.
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Lead, error)
	ListByTenant(ctx context.Context, tenantID, status string, limit, offset int) ([]*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, tenantID, id string) error
	UpdateStatus(ctx context.Context, tenantID, id string, from []string, to string) (*entity.Lead, error)
}
