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

var _ repository.LeadRepository = (*LeadRepo)(nil)

const leadColumns = `id, tenant_id, lead_number, company_name, contact_person, email, phone, industry_id, status, priority, estimated_value, assigned_to, source_audit_id, notes, created_at, updated_at`

// LeadRepo implementación del puerto LeadRepository sobre PostgreSQL (usable con pool o tx).
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador de persistencia para leads. Pasar pool o tx (Querier).
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

// Create persiste un nuevo lead.
func (r *LeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		lead.ID, lead.TenantID, lead.LeadNumber, lead.CompanyName, lead.ContactPerson,
		lead.Email, lead.Phone, lead.IndustryID, lead.Status, lead.Priority,
		lead.EstimatedValue, lead.AssignedTo, lead.SourceAuditID, lead.Notes,
		lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

func scanLead(row pgx.Row) (*entity.Lead, error) {
	var l entity.Lead
	err := row.Scan(
		&l.ID, &l.TenantID, &l.LeadNumber, &l.CompanyName, &l.ContactPerson,
		&l.Email, &l.Phone, &l.IndustryID, &l.Status, &l.Priority,
		&l.EstimatedValue, &l.AssignedTo, &l.SourceAuditID, &l.Notes,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan lead: %w", err)
	}
	return &l, nil
}

// GetByID obtiene un lead del tenant. ID de otro tenant = nil.
func (r *LeadRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE tenant_id = $1 AND id = $2`
	return scanLead(r.q.QueryRow(ctx, query, tenantID, id))
}

// ListByTenant lista leads del tenant; status filtra si no es vacío.
func (r *LeadRepo) ListByTenant(ctx context.Context, tenantID, status string, limit, offset int) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + `
		FROM leads
		WHERE tenant_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, tenantID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.TenantID, &l.LeadNumber, &l.CompanyName, &l.ContactPerson,
			&l.Email, &l.Phone, &l.IndustryID, &l.Status, &l.Priority,
			&l.EstimatedValue, &l.AssignedTo, &l.SourceAuditID, &l.Notes,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza los campos de negocio de un lead, incluido lead_number.
// No toca Status.
func (r *LeadRepo) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads SET lead_number = $3, company_name = $4, contact_person = $5, email = $6,
			phone = $7, industry_id = $8, priority = $9, estimated_value = $10,
			assigned_to = $11, source_audit_id = $12, notes = $13, updated_at = $14
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		lead.TenantID, lead.ID, lead.LeadNumber, lead.CompanyName, lead.ContactPerson,
		lead.Email, lead.Phone, lead.IndustryID, lead.Priority, lead.EstimatedValue,
		lead.AssignedTo, lead.SourceAuditID, lead.Notes, lead.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

// Delete elimina un lead del tenant.
func (r *LeadRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM leads WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}

// UpdateStatus transición condicional atómica, mismo contrato que AuditRepo.UpdateStatus.
func (r *LeadRepo) UpdateStatus(ctx context.Context, tenantID, id string, from []string, to string) (*entity.Lead, error) {
	query := `
		UPDATE leads SET status = $4, updated_at = now()
		WHERE tenant_id = $1 AND id = $2 AND status = ANY($3)
		RETURNING ` + leadColumns
	return scanLead(r.q.QueryRow(ctx, query, tenantID, id, from, to))
}
