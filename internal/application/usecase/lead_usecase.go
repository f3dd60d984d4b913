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
	"github.com/shopspring/decimal"
)

// LeadUseCase CRUD y transiciones de workflow para leads. Mismo esquema de
// atomicidad que AuditUseCase: el guard de estado y la escritura viajan en una
// sola sentencia condicional.
type LeadUseCase struct {
	repo repository.LeadRepository
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(repo repository.LeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

// Create crea un lead en estado new. Priority por defecto: medium.
func (uc *LeadUseCase) Create(ctx context.Context, tenantID string, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant_id requerido", domain.ErrInvalidInput)
	}
	if in.LeadNumber == "" || in.CompanyName == "" {
		return nil, fmt.Errorf("%w: lead_number y company_name son requeridos", domain.ErrInvalidInput)
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.LeadPriorityMedium
	}
	if !entity.ValidLeadPriority(priority) {
		return nil, fmt.Errorf("%w: priority desconocida '%s'", domain.ErrInvalidInput, priority)
	}
	var estimated decimal.NullDecimal
	if in.EstimatedValue != nil {
		estimated = decimal.NewNullDecimal(*in.EstimatedValue)
	}
	now := time.Now()
	lead := &entity.Lead{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		LeadNumber:     in.LeadNumber,
		CompanyName:    in.CompanyName,
		ContactPerson:  in.ContactPerson,
		Email:          in.Email,
		Phone:          in.Phone,
		IndustryID:     in.IndustryID,
		Status:         entity.LeadStatusNew,
		Priority:       priority,
		EstimatedValue: estimated,
		AssignedTo:     in.AssignedTo,
		SourceAuditID:  in.SourceAuditID,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// GetByID obtiene un lead por id dentro del tenant.
func (uc *LeadUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.LeadResponse, error) {
	lead, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	return toLeadResponse(lead), nil
}

// List lista leads del tenant, opcionalmente filtrados por estado.
func (uc *LeadUseCase) List(ctx context.Context, tenantID, status string, limit, offset int) (*dto.LeadListResponse, error) {
	list, err := uc.repo.ListByTenant(ctx, tenantID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LeadResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLeadResponse(l))
	}
	return &dto.LeadListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica un patch parcial. Status nunca cambia por esta vía.
func (uc *LeadUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	lead, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	if in.LeadNumber != nil {
		lead.LeadNumber = *in.LeadNumber
	}
	if in.CompanyName != nil {
		lead.CompanyName = *in.CompanyName
	}
	if in.ContactPerson != nil {
		lead.ContactPerson = *in.ContactPerson
	}
	if in.Email != nil {
		lead.Email = *in.Email
	}
	if in.Phone != nil {
		lead.Phone = *in.Phone
	}
	if in.IndustryID != nil {
		lead.IndustryID = in.IndustryID
	}
	if in.Priority != nil {
		if !entity.ValidLeadPriority(*in.Priority) {
			return nil, fmt.Errorf("%w: priority desconocida '%s'", domain.ErrInvalidInput, *in.Priority)
		}
		lead.Priority = *in.Priority
	}
	if in.EstimatedValue != nil {
		lead.EstimatedValue = decimal.NewNullDecimal(*in.EstimatedValue)
	}
	if in.AssignedTo != nil {
		lead.AssignedTo = in.AssignedTo
	}
	if in.Notes != nil {
		lead.Notes = *in.Notes
	}
	lead.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// Delete elimina un lead del tenant.
func (uc *LeadUseCase) Delete(ctx context.Context, tenantID, id string) error {
	return uc.repo.Delete(ctx, tenantID, id)
}

// Qualify transición new → qualified.
func (uc *LeadUseCase) Qualify(ctx context.Context, tenantID, id string) (*dto.LeadResponse, error) {
	return uc.transition(ctx, tenantID, id, workflow.LeadQualify)
}

// StartProgress transición qualified → in_progress.
func (uc *LeadUseCase) StartProgress(ctx context.Context, tenantID, id string) (*dto.LeadResponse, error) {
	return uc.transition(ctx, tenantID, id, workflow.LeadStartProgress)
}

// Convert transición in_progress → converted.
func (uc *LeadUseCase) Convert(ctx context.Context, tenantID, id string) (*dto.LeadResponse, error) {
	return uc.transition(ctx, tenantID, id, workflow.LeadConvert)
}

// Close cierra el lead desde cualquier estado no terminal. Cerrar un lead
// convertido o ya cerrado es transición inválida.
func (uc *LeadUseCase) Close(ctx context.Context, tenantID, id string) (*dto.LeadResponse, error) {
	return uc.transition(ctx, tenantID, id, workflow.LeadClose)
}

func (uc *LeadUseCase) transition(ctx context.Context, tenantID, id string, t workflow.Transition) (*dto.LeadResponse, error) {
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
	return toLeadResponse(updated), nil
}

func toLeadResponse(l *entity.Lead) *dto.LeadResponse {
	if l == nil {
		return nil
	}
	var estimated *decimal.Decimal
	if l.EstimatedValue.Valid {
		v := l.EstimatedValue.Decimal
		estimated = &v
	}
	return &dto.LeadResponse{
		ID:             l.ID,
		TenantID:       l.TenantID,
		LeadNumber:     l.LeadNumber,
		CompanyName:    l.CompanyName,
		ContactPerson:  l.ContactPerson,
		Email:          l.Email,
		Phone:          l.Phone,
		IndustryID:     l.IndustryID,
		Status:         l.Status,
		Priority:       l.Priority,
		EstimatedValue: estimated,
		AssignedTo:     l.AssignedTo,
		SourceAuditID:  l.SourceAuditID,
		Notes:          l.Notes,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
