package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Auditoria-api/internal/application/dto"
	"github.com/jhoicas/Auditoria-api/internal/application/reports"
)

// ReportHandler reportes agregados y dashboard del tenant (protegido).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// AuditReport godoc
// @Summary      Reporte de auditorías (por estado, industria y tipo)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AuditReportDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reports/audits [get]
func (h *ReportHandler) AuditReport(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	out, err := h.uc.GetAuditReport(c.Context(), tenantID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// LeadReport godoc
// @Summary      Reporte de leads (por estado, prioridad e industria + conversión)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LeadReportDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reports/leads [get]
func (h *ReportHandler) LeadReport(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	out, err := h.uc.GetLeadReport(c.Context(), tenantID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Contadores del dashboard principal
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	out, err := h.uc.GetDashboardStats(c.Context(), tenantID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
