package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Auditoria-api/internal/application/dto"
	"github.com/jhoicas/Auditoria-api/internal/application/usecase"
	"github.com/jhoicas/Auditoria-api/internal/domain"
	"github.com/jhoicas/Auditoria-api/internal/domain/entity"
)

func newLeadUC() *usecase.LeadUseCase {
	return usecase.NewLeadUseCase(newFakeLeadRepo())
}

func createLead(t *testing.T, uc *usecase.LeadUseCase) *dto.LeadResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), testTenantID, dto.CreateLeadRequest{
		LeadNumber:  "LEAD-001",
		CompanyName: "Industrias del Sur",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestLeadCreate_DefaultsNewYMedium(t *testing.T) {
	uc := newLeadUC()
	out := createLead(t, uc)

	assert.Equal(t, entity.LeadStatusNew, out.Status)
	assert.Equal(t, entity.LeadPriorityMedium, out.Priority, "prioridad por defecto: medium")
	assert.Nil(t, out.EstimatedValue, "sin valor estimado queda nulo, no cero")
}

func TestLeadCreate_PriorityInvalida(t *testing.T) {
	uc := newLeadUC()
	_, err := uc.Create(context.Background(), testTenantID, dto.CreateLeadRequest{
		LeadNumber:  "LEAD-002",
		CompanyName: "Acme",
		Priority:    "critical",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLeadCreate_ConValorEstimado(t *testing.T) {
	uc := newLeadUC()
	valor := decimal.RequireFromString("150000.50")
	out, err := uc.Create(context.Background(), testTenantID, dto.CreateLeadRequest{
		LeadNumber:     "LEAD-003",
		CompanyName:    "Acme",
		Priority:       entity.LeadPriorityHigh,
		EstimatedValue: &valor,
	})
	require.NoError(t, err)
	require.NotNil(t, out.EstimatedValue)
	assert.True(t, valor.Equal(*out.EstimatedValue))
	assert.Equal(t, entity.LeadPriorityHigh, out.Priority)
}

// ──────────────────────────────────────────────────────────────────────────────
// Workflow
// ──────────────────────────────────────────────────────────────────────────────

func TestLeadWorkflow_CicloConversion(t *testing.T) {
	uc := newLeadUC()
	out := createLead(t, uc)
	ctx := context.Background()

	r, err := uc.Qualify(ctx, testTenantID, out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusQualified, r.Status)

	r, err = uc.StartProgress(ctx, testTenantID, out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusInProgress, r.Status)

	r, err = uc.Convert(ctx, testTenantID, out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusConverted, r.Status)
}

func TestLeadQualify_SellaUpdatedAt(t *testing.T) {
	uc := newLeadUC()
	out := createLead(t, uc)

	r, err := uc.Qualify(context.Background(), testTenantID, out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusQualified, r.Status)
	assert.True(t, r.UpdatedAt.After(out.UpdatedAt),
		"una transición exitosa avanza updated_at")
}

func TestLeadQualify_DosVeces_SegundaFalla(t *testing.T) {
	uc := newLeadUC()
	out := createLead(t, uc)
	ctx := context.Background()

	_, err := uc.Qualify(ctx, testTenantID, out.ID)
	require.NoError(t, err)

	// La operación no es idempotente: repetirla es transición inválida.
	_, err = uc.Qualify(ctx, testTenantID, out.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "'qualified'", "el mensaje incluye el estado actual")
}

func TestLeadConvert_SinPasarPorInProgress_Falla(t *testing.T) {
	uc := newLeadUC()
	out := createLead(t, uc)

	_, err := uc.Convert(context.Background(), testTenantID, out.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestLeadClose_DesdeCualquierNoTerminal(t *testing.T) {
	ctx := context.Background()

	// Desde new.
	uc := newLeadUC()
	out := createLead(t, uc)
	r, err := uc.Close(ctx, testTenantID, out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusClosed, r.Status)

	// Desde in_progress.
	uc = newLeadUC()
	out = createLead(t, uc)
	_, err = uc.Qualify(ctx, testTenantID, out.ID)
	require.NoError(t, err)
	_, err = uc.StartProgress(ctx, testTenantID, out.ID)
	require.NoError(t, err)
	r, err = uc.Close(ctx, testTenantID, out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusClosed, r.Status)
}

func TestLeadClose_Convertido_Falla(t *testing.T) {
	uc := newLeadUC()
	out := createLead(t, uc)
	ctx := context.Background()

	_, err := uc.Qualify(ctx, testTenantID, out.ID)
	require.NoError(t, err)
	_, err = uc.StartProgress(ctx, testTenantID, out.ID)
	require.NoError(t, err)
	_, err = uc.Convert(ctx, testTenantID, out.ID)
	require.NoError(t, err)

	// converted es terminal: un lead ganado no se cierra como perdido.
	_, err = uc.Close(ctx, testTenantID, out.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// closed también es terminal.
	uc2 := newLeadUC()
	out2 := createLead(t, uc2)
	_, err = uc2.Close(ctx, testTenantID, out2.ID)
	require.NoError(t, err)
	_, err = uc2.Close(ctx, testTenantID, out2.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "cerrar dos veces no es no-op")
}

func TestLeadTransition_OtroTenant_NotFound(t *testing.T) {
	uc := newLeadUC()
	out := createLead(t, uc)

	_, err := uc.Qualify(context.Background(), otherTenantID, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Status nunca cambia vía Update: el patch no tiene campo de estado y el
// repositorio no lo escribe.
func TestLeadUpdate_NoTocaStatus(t *testing.T) {
	uc := newLeadUC()
	out := createLead(t, uc)
	ctx := context.Background()

	_, err := uc.Qualify(ctx, testTenantID, out.ID)
	require.NoError(t, err)

	notas := "contactado por teléfono"
	r, err := uc.Update(ctx, testTenantID, out.ID, dto.UpdateLeadRequest{Notes: &notas})
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusQualified, r.Status)
	assert.Equal(t, notas, r.Notes)
}
