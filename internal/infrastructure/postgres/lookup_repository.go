package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Auditoria-api/internal/domain"
	"github.com/jhoicas/Auditoria-api/internal/domain/entity"
	"github.com/jhoicas/Auditoria-api/internal/domain/repository"
)

var _ repository.IndustryRepository = (*IndustryRepo)(nil)

// IndustryRepo implementación del puerto IndustryRepository sobre PostgreSQL.
type IndustryRepo struct {
	q Querier
}

// NewIndustryRepository construye el adaptador de persistencia para industrias.
func NewIndustryRepository(q Querier) *IndustryRepo {
	return &IndustryRepo{q: q}
}

// Create persiste una nueva industria.
func (r *IndustryRepo) Create(ctx context.Context, industry *entity.Industry) error {
	query := `
		INSERT INTO industries (id, tenant_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		industry.ID, industry.TenantID, industry.Name, industry.Description,
		industry.CreatedAt, industry.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert industry: %w", err)
	}
	return nil
}

// GetByID obtiene una industria del tenant. ID de otro tenant = nil.
func (r *IndustryRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Industry, error) {
	query := `
		SELECT id, tenant_id, name, description, created_at, updated_at
		FROM industries WHERE tenant_id = $1 AND id = $2`
	var i entity.Industry
	err := r.q.QueryRow(ctx, query, tenantID, id).Scan(
		&i.ID, &i.TenantID, &i.Name, &i.Description, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get industry: %w", err)
	}
	return &i, nil
}

// ListByTenant lista industrias del tenant con paginación.
func (r *IndustryRepo) ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Industry, error) {
	query := `
		SELECT id, tenant_id, name, description, created_at, updated_at
		FROM industries WHERE tenant_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Industry
	for rows.Next() {
		var i entity.Industry
		if err := rows.Scan(&i.ID, &i.TenantID, &i.Name, &i.Description, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan industry: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza una industria existente dentro de su tenant.
func (r *IndustryRepo) Update(ctx context.Context, industry *entity.Industry) error {
	query := `
		UPDATE industries SET name = $3, description = $4, updated_at = $5
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		industry.TenantID, industry.ID, industry.Name, industry.Description, industry.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update industry: %w", err)
	}
	return nil
}

// Delete elimina una industria del tenant.
func (r *IndustryRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM industries WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete industry: %w", err)
	}
	return nil
}

var _ repository.AuditTypeRepository = (*AuditTypeRepo)(nil)

// AuditTypeRepo implementación del puerto AuditTypeRepository sobre PostgreSQL.
type AuditTypeRepo struct {
	q Querier
}

// NewAuditTypeRepository construye el adaptador de persistencia para tipos de auditoría.
func NewAuditTypeRepository(q Querier) *AuditTypeRepo {
	return &AuditTypeRepo{q: q}
}

// Create persiste un nuevo tipo de auditoría.
func (r *AuditTypeRepo) Create(ctx context.Context, auditType *entity.AuditType) error {
	query := `
		INSERT INTO audit_types (id, tenant_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		auditType.ID, auditType.TenantID, auditType.Name, auditType.Description,
		auditType.CreatedAt, auditType.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert audit type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de auditoría del tenant. ID de otro tenant = nil.
func (r *AuditTypeRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.AuditType, error) {
	query := `
		SELECT id, tenant_id, name, description, created_at, updated_at
		FROM audit_types WHERE tenant_id = $1 AND id = $2`
	var t entity.AuditType
	err := r.q.QueryRow(ctx, query, tenantID, id).Scan(
		&t.ID, &t.TenantID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get audit type: %w", err)
	}
	return &t, nil
}

// ListByTenant lista tipos de auditoría del tenant con paginación.
func (r *AuditTypeRepo) ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*entity.AuditType, error) {
	query := `
		SELECT id, tenant_id, name, description, created_at, updated_at
		FROM audit_types WHERE tenant_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit types: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditType
	for rows.Next() {
		var t entity.AuditType
		if err := rows.Scan(&t.ID, &t.TenantID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan audit type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza un tipo de auditoría existente dentro de su tenant.
func (r *AuditTypeRepo) Update(ctx context.Context, auditType *entity.AuditType) error {
	query := `
		UPDATE audit_types SET name = $3, description = $4, updated_at = $5
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		auditType.TenantID, auditType.ID, auditType.Name, auditType.Description, auditType.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update audit type: %w", err)
	}
	return nil
}

// Delete elimina un tipo de auditoría del tenant.
func (r *AuditTypeRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM audit_types WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete audit type: %w", err)
	}
	return nil
}
