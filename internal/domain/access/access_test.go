package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Auditoria-api/internal/domain/access"
	"github.com/jhoicas/Auditoria-api/internal/domain/entity"
)

// Enviar a revisión está abierto a cualquier miembro autenticado del tenant.
func TestAllowed_SubmitForReview_CualquierRol(t *testing.T) {
	for _, role := range []string{
		entity.RoleMasterAdmin, entity.RoleAdmin, entity.RoleClient, entity.RoleAuditor,
	} {
		assert.True(t, access.Allowed(role, access.AuditSubmitForReview), "rol %s", role)
	}
	assert.Empty(t, access.AllowedRoles(access.AuditSubmitForReview),
		"lista vacía = cualquier autenticado")
}

// Aprobar, rechazar y cerrar son operaciones de administración.
func TestAllowed_OperacionesAdmin(t *testing.T) {
	adminOps := []string{
		access.AuditApprove, access.AuditReject, access.AuditClose,
		access.LeadQualify, access.LeadStartProgress, access.LeadConvert, access.LeadClose,
		access.UserManage,
	}
	for _, cap := range adminOps {
		assert.True(t, access.Allowed(entity.RoleMasterAdmin, cap), "%s: master_admin", cap)
		assert.True(t, access.Allowed(entity.RoleAdmin, cap), "%s: admin", cap)
		assert.False(t, access.Allowed(entity.RoleClient, cap), "%s: client", cap)
		assert.False(t, access.Allowed(entity.RoleAuditor, cap), "%s: auditor", cap)
	}
}

// La administración de tenants queda reservada a master_admin.
func TestAllowed_TenantManage_SoloMasterAdmin(t *testing.T) {
	assert.True(t, access.Allowed(entity.RoleMasterAdmin, access.TenantManage))
	assert.False(t, access.Allowed(entity.RoleAdmin, access.TenantManage))
	assert.False(t, access.Allowed(entity.RoleClient, access.TenantManage))
	assert.False(t, access.Allowed(entity.RoleAuditor, access.TenantManage))
	assert.Equal(t, []string{entity.RoleMasterAdmin}, access.AllowedRoles(access.TenantManage))
}

// Una capacidad desconocida devuelve nil: el middleware la trata como
// "solo autenticación".
func TestAllowedRoles_CapacidadDesconocida(t *testing.T) {
	assert.Nil(t, access.AllowedRoles("no.existe"))
	assert.True(t, access.Allowed(entity.RoleClient, "no.existe"))
}
