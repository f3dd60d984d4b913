package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Auditoria-api/internal/application/dto"
)

// lookupUseCase contrato común de los catálogos (Industry, AuditType): mismo
// CRUD, mismo DTO. Lo satisfacen *usecase.IndustryUseCase y
// *usecase.AuditTypeUseCase; el handler es uno solo.
type lookupUseCase interface {
	Create(ctx context.Context, tenantID string, in dto.CreateLookupRequest) (*dto.LookupResponse, error)
	GetByID(ctx context.Context, tenantID, id string) (*dto.LookupResponse, error)
	List(ctx context.Context, tenantID string, limit, offset int) (*dto.LookupListResponse, error)
	Update(ctx context.Context, tenantID, id string, in dto.UpdateLookupRequest) (*dto.LookupResponse, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// LookupHandler CRUD de un catálogo del tenant (protegido).
type LookupHandler struct {
	uc lookupUseCase
}

// NewLookupHandler construye el handler para un catálogo concreto.
func NewLookupHandler(uc lookupUseCase) *LookupHandler {
	return &LookupHandler{uc: uc}
}

// Create crea una entrada del catálogo.
func (h *LookupHandler) Create(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	var in dto.CreateLookupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), tenantID, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una entrada del catálogo.
func (h *LookupHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List lista el catálogo del tenant.
func (h *LookupHandler) List(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(c.Context(), tenantID, limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza una entrada del catálogo.
func (h *LookupHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLookupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una entrada del catálogo.
func (h *LookupHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetTenantID(c), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
