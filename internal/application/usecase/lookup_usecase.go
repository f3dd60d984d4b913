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
)

// IndustryUseCase CRUD para el catálogo de industrias.
type IndustryUseCase struct {
	repo repository.IndustryRepository
}

// NewIndustryUseCase construye el caso de uso.
func NewIndustryUseCase(repo repository.IndustryRepository) *IndustryUseCase {
	return &IndustryUseCase{repo: repo}
}

// Create crea una industria del tenant.
func (uc *IndustryUseCase) Create(ctx context.Context, tenantID string, in dto.CreateLookupRequest) (*dto.LookupResponse, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant_id requerido", domain.ErrInvalidInput)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	now := time.Now()
	industry := &entity.Industry{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, industry); err != nil {
		return nil, err
	}
	return industryResponse(industry), nil
}

// GetByID obtiene una industria por id dentro del tenant.
func (uc *IndustryUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.LookupResponse, error) {
	industry, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if industry == nil {
		return nil, domain.ErrNotFound
	}
	return industryResponse(industry), nil
}

// List lista industrias del tenant con paginación.
func (uc *IndustryUseCase) List(ctx context.Context, tenantID string, limit, offset int) (*dto.LookupListResponse, error) {
	list, err := uc.repo.ListByTenant(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LookupResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *industryResponse(i))
	}
	return &dto.LookupListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Update aplica un patch parcial a la industria.
func (uc *IndustryUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateLookupRequest) (*dto.LookupResponse, error) {
	industry, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if industry == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		industry.Name = *in.Name
	}
	if in.Description != nil {
		industry.Description = *in.Description
	}
	industry.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, industry); err != nil {
		return nil, err
	}
	return industryResponse(industry), nil
}

// Delete elimina una industria del tenant.
func (uc *IndustryUseCase) Delete(ctx context.Context, tenantID, id string) error {
	return uc.repo.Delete(ctx, tenantID, id)
}

// AuditTypeUseCase CRUD para el catálogo de tipos de auditoría.
type AuditTypeUseCase struct {
	repo repository.AuditTypeRepository
}

// NewAuditTypeUseCase construye el caso de uso.
func NewAuditTypeUseCase(repo repository.AuditTypeRepository) *AuditTypeUseCase {
	return &AuditTypeUseCase{repo: repo}
}

// Create crea un tipo de auditoría del tenant.
func (uc *AuditTypeUseCase) Create(ctx context.Context, tenantID string, in dto.CreateLookupRequest) (*dto.LookupResponse, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant_id requerido", domain.ErrInvalidInput)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	now := time.Now()
	auditType := &entity.AuditType{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, auditType); err != nil {
		return nil, err
	}
	return auditTypeResponse(auditType), nil
}

// GetByID obtiene un tipo de auditoría por id dentro del tenant.
func (uc *AuditTypeUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.LookupResponse, error) {
	auditType, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if auditType == nil {
		return nil, domain.ErrNotFound
	}
	return auditTypeResponse(auditType), nil
}

// List lista tipos de auditoría del tenant con paginación.
func (uc *AuditTypeUseCase) List(ctx context.Context, tenantID string, limit, offset int) (*dto.LookupListResponse, error) {
	list, err := uc.repo.ListByTenant(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LookupResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *auditTypeResponse(t))
	}
	return &dto.LookupListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Update aplica un patch parcial al tipo de auditoría.
func (uc *AuditTypeUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateLookupRequest) (*dto.LookupResponse, error) {
	auditType, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if auditType == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		auditType.Name = *in.Name
	}
	if in.Description != nil {
		auditType.Description = *in.Description
	}
	auditType.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, auditType); err != nil {
		return nil, err
	}
	return auditTypeResponse(auditType), nil
}

// Delete elimina un tipo de auditoría del tenant.
func (uc *AuditTypeUseCase) Delete(ctx context.Context, tenantID, id string) error {
	return uc.repo.Delete(ctx, tenantID, id)
}

func industryResponse(i *entity.Industry) *dto.LookupResponse {
	return &dto.LookupResponse{
		ID:          i.ID,
		TenantID:    i.TenantID,
		Name:        i.Name,
		Description: i.Description,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func auditTypeResponse(t *entity.AuditType) *dto.LookupResponse {
	return &dto.LookupResponse{
		ID:          t.ID,
		TenantID:    t.TenantID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
