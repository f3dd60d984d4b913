// Package reports contiene los casos de uso de reportes agregados y el
// dashboard. Solo lectura: no hay invariantes de transición aquí, la
// corrección es que la agrupación particione las filas del tenant sin
// omisión ni duplicado y la aritmética siga la semántica sum/count/porcentaje.
package reports

import (
	"context"
	"fmt"

	"github.com/jhoicas/Auditoria-api/internal/application/dto"
	"github.com/jhoicas/Auditoria-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ReportUseCase agrega auditorías y leads por tenant.
//
// Fuente de datos: ReportRepository (consultas read-only). Un fallo de
// cualquier consulta aborta el reporte completo; no hay resultados parciales.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// GetAuditReport agregados de auditorías: por estado, industria y tipo.
//
// Tres consultas en paralelo, mismo esquema de canales que el dashboard.
func (uc *ReportUseCase) GetAuditReport(ctx context.Context, tenantID string) (*dto.AuditReportDTO, error) {
	type countsResult struct {
		counts []repository.GroupCount
		err    error
	}

	statusCh := make(chan countsResult, 1)
	industryCh := make(chan countsResult, 1)
	typeCh := make(chan countsResult, 1)

	go func() {
		counts, err := uc.reportRepo.AuditCountsByStatus(ctx, tenantID)
		statusCh <- countsResult{counts, err}
	}()
	go func() {
		counts, err := uc.reportRepo.AuditCountsByIndustry(ctx, tenantID)
		industryCh <- countsResult{counts, err}
	}()
	go func() {
		counts, err := uc.reportRepo.AuditCountsByType(ctx, tenantID)
		typeCh <- countsResult{counts, err}
	}()

	byStatus := <-statusCh
	byIndustry := <-industryCh
	byType := <-typeCh

	if byStatus.err != nil {
		return nil, fmt.Errorf("reporte de auditorías: por estado: %w", byStatus.err)
	}
	if byIndustry.err != nil {
		return nil, fmt.Errorf("reporte de auditorías: por industria: %w", byIndustry.err)
	}
	if byType.err != nil {
		return nil, fmt.Errorf("reporte de auditorías: por tipo: %w", byType.err)
	}

	var total int64
	for _, c := range byStatus.counts {
		total += c.Count
	}

	return &dto.AuditReportDTO{
		ByStatus:   toGroupCountDTOs(byStatus.counts),
		ByIndustry: toGroupCountDTOs(byIndustry.counts),
		ByType:     toGroupCountDTOs(byType.counts),
		Total:      total,
	}, nil
}

// GetLeadReport agregados de leads: por estado, prioridad e industria, más
// tasa de conversión y valor estimado total.
func (uc *ReportUseCase) GetLeadReport(ctx context.Context, tenantID string) (*dto.LeadReportDTO, error) {
	type countsResult struct {
		counts []repository.GroupCount
		err    error
	}
	type totalsResult struct {
		totals *repository.LeadTotals
		err    error
	}

	statusCh := make(chan countsResult, 1)
	priorityCh := make(chan countsResult, 1)
	industryCh := make(chan countsResult, 1)
	totalsCh := make(chan totalsResult, 1)

	go func() {
		counts, err := uc.reportRepo.LeadCountsByStatus(ctx, tenantID)
		statusCh <- countsResult{counts, err}
	}()
	go func() {
		counts, err := uc.reportRepo.LeadCountsByPriority(ctx, tenantID)
		priorityCh <- countsResult{counts, err}
	}()
	go func() {
		counts, err := uc.reportRepo.LeadCountsByIndustry(ctx, tenantID)
		industryCh <- countsResult{counts, err}
	}()
	go func() {
		totals, err := uc.reportRepo.GetLeadTotals(ctx, tenantID)
		totalsCh <- totalsResult{totals, err}
	}()

	byStatus := <-statusCh
	byPriority := <-priorityCh
	byIndustry := <-industryCh
	totals := <-totalsCh

	if byStatus.err != nil {
		return nil, fmt.Errorf("reporte de leads: por estado: %w", byStatus.err)
	}
	if byPriority.err != nil {
		return nil, fmt.Errorf("reporte de leads: por prioridad: %w", byPriority.err)
	}
	if byIndustry.err != nil {
		return nil, fmt.Errorf("reporte de leads: por industria: %w", byIndustry.err)
	}
	if totals.err != nil {
		return nil, fmt.Errorf("reporte de leads: totales: %w", totals.err)
	}

	return &dto.LeadReportDTO{
		ByStatus:            toGroupCountDTOs(byStatus.counts),
		ByPriority:          toGroupCountDTOs(byPriority.counts),
		ByIndustry:          toGroupCountDTOs(byIndustry.counts),
		Total:               totals.totals.Total,
		Converted:           totals.totals.Converted,
		ConversionRate:      ConversionRate(totals.totals.Converted, totals.totals.Total),
		TotalEstimatedValue: totals.totals.EstimatedValue,
	}, nil
}

// GetDashboardStats contadores del dashboard principal del tenant.
func (uc *ReportUseCase) GetDashboardStats(ctx context.Context, tenantID string) (*dto.DashboardStatsDTO, error) {
	stats, err := uc.reportRepo.GetDashboardStats(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	return &dto.DashboardStatsDTO{
		TotalAudits:     stats.TotalAudits,
		PendingAudits:   stats.PendingAudits,
		CompletedAudits: stats.CompletedAudits,
		TotalLeads:      stats.TotalLeads,
	}, nil
}

// ConversionRate calcula converted/total*100 con 2 decimales. Con total cero
// devuelve 0 (nunca divide por cero).
func ConversionRate(converted, total int64) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(converted).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

func toGroupCountDTOs(counts []repository.GroupCount) []dto.GroupCountDTO {
	out := make([]dto.GroupCountDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.GroupCountDTO{Key: c.Key, Count: c.Count})
	}
	return out
}
