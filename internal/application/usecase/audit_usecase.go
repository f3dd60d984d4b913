package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Auditoria-api/internal/application/dto"
	"github.com/jhoicas/Auditoria-api/internal/domain"
	"github.com/jhoicas/Auditoria-api/internal/domain/entity"
	"github.com/jhoicas/Auditoria-api/internal/domain/repository"
	"github.com/jhoicas/Auditoria-api/internal/domain/workflow"
)

// AuditUseCase CRUD y transiciones de workflow para auditorías.
//
// Los roles ya fueron verificados por el gate de acceso en la capa HTTP; aquí
// solo se valida el guard de estado. El guard y la escritura son una sola
// sentencia condicional en el repositorio (UpdateStatus), de modo que dos
// llamadas concurrentes sobre la misma auditoría nunca tienen éxito ambas.
type AuditUseCase struct {
	repo repository.AuditRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.AuditRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// Create crea una auditoría en estado draft.
func (uc *AuditUseCase) Create(ctx context.Context, tenantID string, in dto.CreateAuditRequest) (*dto.AuditResponse, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant_id requerido", domain.ErrInvalidInput)
	}
	if in.AuditNumber == "" || in.CustomerName == "" {
		return nil, fmt.Errorf("%w: audit_number y customer_name son requeridos", domain.ErrInvalidInput)
	}
	auditDate := in.AuditDate
	if auditDate.IsZero() {
		auditDate = time.Now()
	}
	now := time.Now()
	audit := &entity.Audit{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		AuditNumber:  in.AuditNumber,
		CustomerName: in.CustomerName,
		SiteLocation: in.SiteLocation,
		IndustryID:   in.IndustryID,
		AuditTypeID:  in.AuditTypeID,
		AuditorID:    in.AuditorID,
		AuditorName:  in.AuditorName,
		AuditDate:    auditDate,
		Status:       entity.AuditStatusDraft,
		GeoLocation:  in.GeoLocation,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, audit); err != nil {
		return nil, err
	}
	return toAuditResponse(audit), nil
}

// GetByID obtiene una auditoría por id dentro del tenant.
func (uc *AuditUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.AuditResponse, error) {
	audit, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if audit == nil {
		return nil, domain.ErrNotFound
	}
	return toAuditResponse(audit), nil
}

// List lista auditorías del tenant, opcionalmente filtradas por estado.
func (uc *AuditUseCase) List(ctx context.Context, tenantID, status string, limit, offset int) (*dto.AuditListResponse, error) {
	list, err := uc.repo.ListByTenant(ctx, tenantID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAuditResponse(a))
	}
	return &dto.AuditListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica un patch parcial. Una auditoría cerrada no acepta cambios.
// Status nunca cambia por esta vía.
func (uc *AuditUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateAuditRequest) (*dto.AuditResponse, error) {
	audit, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if audit == nil {
		return nil, domain.ErrNotFound
	}
	if !audit.Editable() {
		return nil, fmt.Errorf("%w: una auditoría en estado 'closed' no acepta cambios", domain.ErrInvalidTransition)
	}
	if in.AuditNumber != nil {
		audit.AuditNumber = *in.AuditNumber
	}
	if in.CustomerName != nil {
		audit.CustomerName = *in.CustomerName
	}
	if in.SiteLocation != nil {
		audit.SiteLocation = *in.SiteLocation
	}
	if in.IndustryID != nil {
		audit.IndustryID = in.IndustryID
	}
	if in.AuditTypeID != nil {
		audit.AuditTypeID = in.AuditTypeID
	}
	if in.AuditorID != nil {
		audit.AuditorID = in.AuditorID
	}
	if in.AuditorName != nil {
		audit.AuditorName = *in.AuditorName
	}
	if in.AuditDate != nil {
		audit.AuditDate = *in.AuditDate
	}
	if in.GeoLocation != nil {
		audit.GeoLocation = in.GeoLocation
	}
	audit.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, audit); err != nil {
		return nil, err
	}
	return toAuditResponse(audit), nil
}

// Delete elimina una auditoría del tenant.
func (uc *AuditUseCase) Delete(ctx context.Context, tenantID, id string) error {
	return uc.repo.Delete(ctx, tenantID, id)
}

// SubmitForReview transición draft → review.
func (uc *AuditUseCase) SubmitForReview(ctx context.Context, tenantID, id string) (*dto.AuditResponse, error) {
	return uc.transition(ctx, tenantID, id, workflow.AuditSubmitForReview)
}

// Approve transición review → approved.
func (uc *AuditUseCase) Approve(ctx context.Context, tenantID, id string) (*dto.AuditResponse, error) {
	return uc.transition(ctx, tenantID, id, workflow.AuditApprove)
}

// Reject transición review → draft.
func (uc *AuditUseCase) Reject(ctx context.Context, tenantID, id string) (*dto.AuditResponse, error) {
	return uc.transition(ctx, tenantID, id, workflow.AuditReject)
}

// Close transición approved → closed.
func (uc *AuditUseCase) Close(ctx context.Context, tenantID, id string) (*dto.AuditResponse, error) {
	return uc.transition(ctx, tenantID, id, workflow.AuditClose)
}

// transition ejecuta una operación de workflow. Si ninguna fila cumplió el
// predicado, relee para distinguir "no existe en el tenant" de "estado inválido".
func (uc *AuditUseCase) transition(ctx context.Context, tenantID, id string, t workflow.Transition) (*dto.AuditResponse, error) {
	updated, err := uc.repo.UpdateStatus(ctx, tenantID, id, t.From, t.To)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		current, err := uc.repo.GetByID(ctx, tenantID, id)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: '%s' requiere estado %s, estado actual '%s'",
			domain.ErrInvalidTransition, t.Name, t.RequiredFrom(), current.Status)
	}
	return toAuditResponse(updated), nil
}

func toAuditResponse(a *entity.Audit) *dto.AuditResponse {
	if a == nil {
		return nil
	}
	return &dto.AuditResponse{
		ID:           a.ID,
		TenantID:     a.TenantID,
		AuditNumber:  a.AuditNumber,
		CustomerName: a.CustomerName,
		SiteLocation: a.SiteLocation,
		IndustryID:   a.IndustryID,
		AuditTypeID:  a.AuditTypeID,
		AuditorID:    a.AuditorID,
		AuditorName:  a.AuditorName,
		AuditDate:    a.AuditDate,
		Status:       a.Status,
		GeoLocation:  a.GeoLocation,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
