package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Auditoria-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes agregados y dashboard.
// Nunca participa en transacciones; en producción recibe el pool.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

func (r *ReportRepo) groupCounts(ctx context.Context, query, tenantID, label string) ([]repository.GroupCount, error) {
	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("reports.%s: %w", label, err)
	}
	defer rows.Close()

	var results []repository.GroupCount
	for rows.Next() {
		var gc repository.GroupCount
		if err := rows.Scan(&gc.Key, &gc.Count); err != nil {
			return nil, fmt.Errorf("reports.%s scan: %w", label, err)
		}
		results = append(results, gc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reports.%s rows: %w", label, err)
	}
	if results == nil {
		results = []repository.GroupCount{}
	}
	return results, nil
}

// AuditCountsByStatus auditorías del tenant agrupadas por estado. Un status
// NULL o vacío (filas de esquemas anteriores) cae en el grupo "unknown".
func (r *ReportRepo) AuditCountsByStatus(ctx context.Context, tenantID string) ([]repository.GroupCount, error) {
	const query = `
	SELECT COALESCE(NULLIF(status, ''), 'unknown') AS status, COUNT(*)
	FROM audits
	WHERE tenant_id = $1
	GROUP BY 1
	ORDER BY 1`
	return r.groupCounts(ctx, query, tenantID, "AuditCountsByStatus")
}

// AuditCountsByIndustry auditorías agrupadas por nombre de industria.
// Las auditorías sin industria se consolidan en el grupo "Unknown".
func (r *ReportRepo) AuditCountsByIndustry(ctx context.Context, tenantID string) ([]repository.GroupCount, error) {
	const query = `
	SELECT COALESCE(i.name, 'Unknown') AS industry, COUNT(*)
	FROM audits a
	LEFT JOIN industries i ON i.id = a.industry_id
	WHERE a.tenant_id = $1
	GROUP BY i.name
	ORDER BY COUNT(*) DESC`
	return r.groupCounts(ctx, query, tenantID, "AuditCountsByIndustry")
}

// AuditCountsByType auditorías agrupadas por nombre de tipo. Sin tipo = "Unknown".
func (r *ReportRepo) AuditCountsByType(ctx context.Context, tenantID string) ([]repository.GroupCount, error) {
	const query = `
	SELECT COALESCE(t.name, 'Unknown') AS audit_type, COUNT(*)
	FROM audits a
	LEFT JOIN audit_types t ON t.id = a.audit_type_id
	WHERE a.tenant_id = $1
	GROUP BY t.name
	ORDER BY COUNT(*) DESC`
	return r.groupCounts(ctx, query, tenantID, "AuditCountsByType")
}

// LeadCountsByStatus leads del tenant agrupados por estado. Un status NULL o
// vacío cae en el grupo "unknown".
func (r *ReportRepo) LeadCountsByStatus(ctx context.Context, tenantID string) ([]repository.GroupCount, error) {
	const query = `
	SELECT COALESCE(NULLIF(status, ''), 'unknown') AS status, COUNT(*)
	FROM leads
	WHERE tenant_id = $1
	GROUP BY 1
	ORDER BY 1`
	return r.groupCounts(ctx, query, tenantID, "LeadCountsByStatus")
}

// LeadCountsByPriority leads del tenant agrupados por prioridad.
func (r *ReportRepo) LeadCountsByPriority(ctx context.Context, tenantID string) ([]repository.GroupCount, error) {
	const query = `
	SELECT priority, COUNT(*)
	FROM leads
	WHERE tenant_id = $1
	GROUP BY priority
	ORDER BY priority`
	return r.groupCounts(ctx, query, tenantID, "LeadCountsByPriority")
}

// LeadCountsByIndustry leads agrupados por nombre de industria. Sin industria = "Unknown".
func (r *ReportRepo) LeadCountsByIndustry(ctx context.Context, tenantID string) ([]repository.GroupCount, error) {
	const query = `
	SELECT COALESCE(i.name, 'Unknown') AS industry, COUNT(*)
	FROM leads l
	LEFT JOIN industries i ON i.id = l.industry_id
	WHERE l.tenant_id = $1
	GROUP BY i.name
	ORDER BY COUNT(*) DESC`
	return r.groupCounts(ctx, query, tenantID, "LeadCountsByIndustry")
}

// GetLeadTotals total, convertidos y suma de valor estimado de los leads del tenant.
// COALESCE protege el SUM: cero cuando no hay leads o todos tienen valor nulo.
func (r *ReportRepo) GetLeadTotals(ctx context.Context, tenantID string) (*repository.LeadTotals, error) {
	const query = `
	SELECT
	    COUNT(*)                                               AS total,
	    COUNT(*) FILTER (WHERE status = 'converted')           AS converted,
	    COALESCE(SUM(estimated_value), 0)                      AS estimated_value
	FROM leads
	WHERE tenant_id = $1`

	var totals repository.LeadTotals
	err := r.q.QueryRow(ctx, query, tenantID).
		Scan(&totals.Total, &totals.Converted, &totals.EstimatedValue)
	if err != nil {
		return nil, fmt.Errorf("reports.GetLeadTotals: %w", err)
	}
	return &totals, nil
}

// GetDashboardStats contadores del dashboard en una sola consulta.
// 'planning' y 'completed' son estados del esquema anterior: el enum actual no
// los produce, los contadores quedan en cero con datos nuevos.
func (r *ReportRepo) GetDashboardStats(ctx context.Context, tenantID string) (*repository.DashboardStats, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM audits WHERE tenant_id = $1)                             AS total_audits,
	    (SELECT COUNT(*) FROM audits WHERE tenant_id = $1 AND status = 'planning')     AS pending_audits,
	    (SELECT COUNT(*) FROM audits WHERE tenant_id = $1 AND status = 'completed')    AS completed_audits,
	    (SELECT COUNT(*) FROM leads  WHERE tenant_id = $1)                             AS total_leads`

	var stats repository.DashboardStats
	err := r.q.QueryRow(ctx, query, tenantID).
		Scan(&stats.TotalAudits, &stats.PendingAudits, &stats.CompletedAudits, &stats.TotalLeads)
	if err != nil {
		return nil, fmt.Errorf("reports.GetDashboardStats: %w", err)
	}
	return &stats, nil
}
