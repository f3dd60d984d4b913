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

var _ repository.AuditRepository = (*AuditRepo)(nil)

const auditColumns = `id, tenant_id, audit_number, customer_name, site_location, industry_id, audit_type_id, auditor_id, auditor_name, audit_date, status, geo_location, created_at, updated_at`

// AuditRepo implementación del puerto AuditRepository sobre PostgreSQL (usable con pool o tx).
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador de persistencia para auditorías. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Create persiste una nueva auditoría.
func (r *AuditRepo) Create(ctx context.Context, audit *entity.Audit) error {
	query := `
		INSERT INTO audits (` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		audit.ID, audit.TenantID, audit.AuditNumber, audit.CustomerName, audit.SiteLocation,
		audit.IndustryID, audit.AuditTypeID, audit.AuditorID, audit.AuditorName,
		audit.AuditDate, audit.Status, audit.GeoLocation, audit.CreatedAt, audit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert audit: %w", err)
	}
	return nil
}

func scanAudit(row pgx.Row) (*entity.Audit, error) {
	var a entity.Audit
	err := row.Scan(
		&a.ID, &a.TenantID, &a.AuditNumber, &a.CustomerName, &a.SiteLocation,
		&a.IndustryID, &a.AuditTypeID, &a.AuditorID, &a.AuditorName,
		&a.AuditDate, &a.Status, &a.GeoLocation, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan audit: %w", err)
	}
	return &a, nil
}

// GetByID obtiene una auditoría del tenant. ID de otro tenant = nil.
func (r *AuditRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Audit, error) {
	query := `SELECT ` + auditColumns + ` FROM audits WHERE tenant_id = $1 AND id = $2`
	return scanAudit(r.q.QueryRow(ctx, query, tenantID, id))
}

// ListByTenant lista auditorías del tenant; status filtra si no es vacío.
func (r *AuditRepo) ListByTenant(ctx context.Context, tenantID, status string, limit, offset int) ([]*entity.Audit, error) {
	query := `SELECT ` + auditColumns + `
		FROM audits
		WHERE tenant_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, tenantID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audits: %w", err)
	}
	defer rows.Close()
	var list []*entity.Audit
	for rows.Next() {
		var a entity.Audit
		if err := rows.Scan(&a.ID, &a.TenantID, &a.AuditNumber, &a.CustomerName, &a.SiteLocation,
			&a.IndustryID, &a.AuditTypeID, &a.AuditorID, &a.AuditorName,
			&a.AuditDate, &a.Status, &a.GeoLocation, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan audit: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza los campos de negocio de una auditoría, incluido
// audit_number. No toca Status: las transiciones pasan por UpdateStatus.
func (r *AuditRepo) Update(ctx context.Context, audit *entity.Audit) error {
	query := `
		UPDATE audits SET audit_number = $3, customer_name = $4, site_location = $5, industry_id = $6,
			audit_type_id = $7, auditor_id = $8, auditor_name = $9, audit_date = $10,
			geo_location = $11, updated_at = $12
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		audit.TenantID, audit.ID, audit.AuditNumber, audit.CustomerName, audit.SiteLocation,
		audit.IndustryID, audit.AuditTypeID, audit.AuditorID, audit.AuditorName,
		audit.AuditDate, audit.GeoLocation, audit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update audit: %w", err)
	}
	return nil
}

// Delete elimina una auditoría del tenant.
func (r *AuditRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM audits WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete audit: %w", err)
	}
	return nil
}

// UpdateStatus transición condicional en una sola sentencia: guard + escritura
// atómicos a nivel de fila. Con dos transiciones concurrentes sobre la misma
// auditoría, exactamente una cumple el predicado; la otra ve nil.
func (r *AuditRepo) UpdateStatus(ctx context.Context, tenantID, id string, from []string, to string) (*entity.Audit, error) {
	query := `
		UPDATE audits SET status = $4, updated_at = now()
		WHERE tenant_id = $1 AND id = $2 AND status = ANY($3)
		RETURNING ` + auditColumns
	return scanAudit(r.q.QueryRow(ctx, query, tenantID, id, from, to))
}
