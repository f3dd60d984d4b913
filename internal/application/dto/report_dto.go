package dto

import "github.com/shopspring/decimal"

// GroupCountDTO un bucket de agrupación con su conteo.
type GroupCountDTO struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// AuditReportDTO agregados de auditorías del tenant.
type AuditReportDTO struct {
	ByStatus   []GroupCountDTO `json:"by_status"`
	ByIndustry []GroupCountDTO `json:"by_industry"`
	ByType     []GroupCountDTO `json:"by_type"`
	Total      int64           `json:"total"`
}

// LeadReportDTO agregados de leads del tenant.
//
// ConversionRate = converted/total*100 con 2 decimales; 0 si no hay leads.
// TotalEstimatedValue = SUM de estimated_value no nulos; 0 si ninguno tiene valor.
type LeadReportDTO struct {
	ByStatus            []GroupCountDTO `json:"by_status"`
	ByPriority          []GroupCountDTO `json:"by_priority"`
	ByIndustry          []GroupCountDTO `json:"by_industry"`
	Total               int64           `json:"total"`
	Converted           int64           `json:"converted"`
	ConversionRate      decimal.Decimal `json:"conversion_rate"`
	TotalEstimatedValue decimal.Decimal `json:"total_estimated_value"`
}

// DashboardStatsDTO contadores del dashboard principal.
type DashboardStatsDTO struct {
	TotalAudits     int64 `json:"totalAudits"`
	PendingAudits   int64 `json:"pendingAudits"`
	CompletedAudits int64 `json:"completedAudits"`
	TotalLeads      int64 `json:"totalLeads"`
}
