package repository

import (
	"context"

	"github.com/jhoicas/Auditoria-api/internal/domain/entity"
)

// IndustryRepository define el puerto de persistencia para Industry.
type IndustryRepository interface {
	Create(ctx context.Context, industry *entity.Industry) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Industry, error)
	ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Industry, error)
	Update(ctx context.Context, industry *entity.Industry) error
	Delete(ctx context.Context, tenantID, id string) error
}

// AuditTypeRepository define el puerto de persistencia para AuditType.
type AuditTypeRepository interface {
	Create(ctx context.Context, auditType *entity.AuditType) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.AuditType, error)
	ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*entity.AuditType, error)
	Update(ctx context.Context, auditType *entity.AuditType) error
	Delete(ctx context.Context, tenantID, id string) error
}
