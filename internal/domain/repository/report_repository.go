package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// GroupCount un bucket de agrupación con su conteo.
type GroupCount struct {
	Key   string
	Count int64
}

// LeadTotals agregados globales de leads de un tenant.
type LeadTotals struct {
	Total          int64
	Converted      int64
	EstimatedValue decimal.Decimal // SUM de estimated_value no nulos; 0 si no hay
}

// DashboardStats contadores del dashboard principal.
//
// PendingAudits y CompletedAudits cuentan los estados 'planning' y 'completed'
// del esquema anterior; el enum actual nunca los produce, así que valen cero.
type DashboardStats struct {
	TotalAudits     int64
	PendingAudits   int64
	CompletedAudits int64
	TotalLeads      int64
}

// ReportRepository consultas de solo lectura para reportes y dashboard.
// Toda consulta filtra por tenantID; la agrupación particiona las filas del
// tenant sin omisión ni duplicado.
type ReportRepository interface {
	AuditCountsByStatus(ctx context.Context, tenantID string) ([]GroupCount, error)
	AuditCountsByIndustry(ctx context.Context, tenantID string) ([]GroupCount, error)
	AuditCountsByType(ctx context.Context, tenantID string) ([]GroupCount, error)
	LeadCountsByStatus(ctx context.Context, tenantID string) ([]GroupCount, error)
	LeadCountsByPriority(ctx context.Context, tenantID string) ([]GroupCount, error)
	LeadCountsByIndustry(ctx context.Context, tenantID string) ([]GroupCount, error)
	GetLeadTotals(ctx context.Context, tenantID string) (*LeadTotals, error)
	GetDashboardStats(ctx context.Context, tenantID string) (*DashboardStats, error)
}
