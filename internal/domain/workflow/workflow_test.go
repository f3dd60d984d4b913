package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Auditoria-api/internal/domain/entity"
	"github.com/jhoicas/Auditoria-api/internal/domain/workflow"
)

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados de Audit
// ──────────────────────────────────────────────────────────────────────────────

// La tabla completa: cada operación solo aplica desde sus estados origen.
func TestAuditTransitions_TablaCompleta(t *testing.T) {
	allStatuses := []string{
		entity.AuditStatusDraft,
		entity.AuditStatusReview,
		entity.AuditStatusApproved,
		entity.AuditStatusClosed,
	}
	cases := []struct {
		transition  workflow.Transition
		allowedFrom []string
		to          string
	}{
		{workflow.AuditSubmitForReview, []string{entity.AuditStatusDraft}, entity.AuditStatusReview},
		{workflow.AuditApprove, []string{entity.AuditStatusReview}, entity.AuditStatusApproved},
		{workflow.AuditReject, []string{entity.AuditStatusReview}, entity.AuditStatusDraft},
		{workflow.AuditClose, []string{entity.AuditStatusApproved}, entity.AuditStatusClosed},
	}
	for _, tc := range cases {
		t.Run(tc.transition.Name, func(t *testing.T) {
			assert.Equal(t, tc.to, tc.transition.To)
			for _, status := range allStatuses {
				expected := contains(tc.allowedFrom, status)
				assert.Equal(t, expected, tc.transition.AllowsFrom(status),
					"operación %s desde estado %s", tc.transition.Name, status)
			}
		})
	}
}

// "closed" es terminal: ninguna operación de auditoría sale de él.
func TestAuditClosed_EsTerminal(t *testing.T) {
	for _, tr := range []workflow.Transition{
		workflow.AuditSubmitForReview,
		workflow.AuditApprove,
		workflow.AuditReject,
		workflow.AuditClose,
	} {
		assert.False(t, tr.AllowsFrom(entity.AuditStatusClosed),
			"'%s' no debe aplicar desde closed", tr.Name)
	}
}

// No hay atajos: draft no llega directo a approved ni a closed.
func TestAudit_SinSaltosDeEstado(t *testing.T) {
	assert.False(t, workflow.AuditApprove.AllowsFrom(entity.AuditStatusDraft))
	assert.False(t, workflow.AuditClose.AllowsFrom(entity.AuditStatusDraft))
	assert.False(t, workflow.AuditClose.AllowsFrom(entity.AuditStatusReview))
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados de Lead
// ──────────────────────────────────────────────────────────────────────────────

// Close aplica desde cualquier estado no terminal, y solo desde ellos.
func TestLeadClose_SoloDesdeNoTerminales(t *testing.T) {
	assert.True(t, workflow.LeadClose.AllowsFrom(entity.LeadStatusNew))
	assert.True(t, workflow.LeadClose.AllowsFrom(entity.LeadStatusQualified))
	assert.True(t, workflow.LeadClose.AllowsFrom(entity.LeadStatusInProgress))

	// converted y closed son terminales: cerrar no es idempotente.
	assert.False(t, workflow.LeadClose.AllowsFrom(entity.LeadStatusConverted))
	assert.False(t, workflow.LeadClose.AllowsFrom(entity.LeadStatusClosed))
}

// El camino de conversión es estrictamente secuencial.
func TestLeadConvert_RequiereInProgress(t *testing.T) {
	assert.True(t, workflow.LeadConvert.AllowsFrom(entity.LeadStatusInProgress))
	assert.False(t, workflow.LeadConvert.AllowsFrom(entity.LeadStatusNew))
	assert.False(t, workflow.LeadConvert.AllowsFrom(entity.LeadStatusQualified))
	assert.False(t, workflow.LeadConvert.AllowsFrom(entity.LeadStatusConverted))
}

// ──────────────────────────────────────────────────────────────────────────────
// Formato de mensajes
// ──────────────────────────────────────────────────────────────────────────────

func TestRequiredFrom_Formato(t *testing.T) {
	assert.Equal(t, "'draft'", workflow.AuditSubmitForReview.RequiredFrom())
	assert.Equal(t, "'new' | 'qualified' | 'in_progress'", workflow.LeadClose.RequiredFrom())
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
