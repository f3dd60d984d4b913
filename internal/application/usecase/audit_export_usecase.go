package usecase

import (
	"context"

	"github.com/jhoicas/Auditoria-api/internal/domain"
	"github.com/jhoicas/Auditoria-api/internal/domain/entity"
	"github.com/jhoicas/Auditoria-api/internal/domain/repository"
)

// AuditPDFGenerator puerto de render del resumen PDF de una auditoría.
// La implementación vive en infrastructure/pdf.
type AuditPDFGenerator interface {
	GenerateAuditPDF(
		ctx context.Context,
		audit *entity.Audit,
		tenant *entity.Tenant,
		industry *entity.Industry,
		auditType *entity.AuditType,
	) ([]byte, error)
}

// AuditExportUseCase exporta el resumen PDF de una auditoría.
// Resuelve los lookups (industria, tipo) antes de renderizar; ambos son
// opcionales en la auditoría y pueden llegar nil al generador.
type AuditExportUseCase struct {
	auditRepo     repository.AuditRepository
	tenantRepo    repository.TenantRepository
	industryRepo  repository.IndustryRepository
	auditTypeRepo repository.AuditTypeRepository
	pdfGen        AuditPDFGenerator
}

// NewAuditExportUseCase construye el caso de uso de exportación.
func NewAuditExportUseCase(
	auditRepo repository.AuditRepository,
	tenantRepo repository.TenantRepository,
	industryRepo repository.IndustryRepository,
	auditTypeRepo repository.AuditTypeRepository,
	pdfGen AuditPDFGenerator,
) *AuditExportUseCase {
	return &AuditExportUseCase{
		auditRepo:     auditRepo,
		tenantRepo:    tenantRepo,
		industryRepo:  industryRepo,
		auditTypeRepo: auditTypeRepo,
		pdfGen:        pdfGen,
	}
}

// ExportPDF genera el PDF de la auditoría y devuelve sus bytes junto con el
// número de auditoría (para el nombre del archivo).
func (uc *AuditExportUseCase) ExportPDF(ctx context.Context, tenantID, id string) ([]byte, string, error) {
	audit, err := uc.auditRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, "", err
	}
	if audit == nil {
		return nil, "", domain.ErrNotFound
	}

	tenant, err := uc.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, "", err
	}
	if tenant == nil {
		return nil, "", domain.ErrNotFound
	}

	var industry *entity.Industry
	if audit.IndustryID != nil {
		industry, err = uc.industryRepo.GetByID(ctx, tenantID, *audit.IndustryID)
		if err != nil {
			return nil, "", err
		}
	}
	var auditType *entity.AuditType
	if audit.AuditTypeID != nil {
		auditType, err = uc.auditTypeRepo.GetByID(ctx, tenantID, *audit.AuditTypeID)
		if err != nil {
			return nil, "", err
		}
	}

	pdfBytes, err := uc.pdfGen.GenerateAuditPDF(ctx, audit, tenant, industry, auditType)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, audit.AuditNumber, nil
}
