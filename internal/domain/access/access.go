// Package access centraliza la tabla de capacidades (entidad, operación) → roles.
//
// El router consulta esta tabla una sola vez por ruta y la pasa al middleware
// RBAC; los casos de uso asumen que el caller ya fue autorizado y no repiten
// la verificación de rol.
package access

import "github.com/jhoicas/Auditoria-api/internal/domain/entity"

// Capacidades conocidas. El valor es la lista de roles permitidos; una lista
// vacía significa "cualquier usuario autenticado del tenant".
const (
	AuditSubmitForReview = "audit.submit_for_review"
	AuditApprove         = "audit.approve"
	AuditReject          = "audit.reject"
	AuditClose           = "audit.close"

	LeadQualify       = "lead.qualify"
	LeadStartProgress = "lead.start_progress"
	LeadConvert       = "lead.convert"
	LeadClose         = "lead.close"

	UserManage   = "user.manage"
	TenantManage = "tenant.manage"
)

var adminRoles = []string{entity.RoleMasterAdmin, entity.RoleAdmin}

var capabilities = map[string][]string{
	AuditSubmitForReview: {}, // cualquier miembro autenticado del tenant
	AuditApprove:         adminRoles,
	AuditReject:          adminRoles,
	AuditClose:           adminRoles,

	LeadQualify:       adminRoles,
	LeadStartProgress: adminRoles,
	LeadConvert:       adminRoles,
	LeadClose:         adminRoles,

	UserManage:   adminRoles,
	TenantManage: {entity.RoleMasterAdmin},
}

// AllowedRoles devuelve los roles permitidos para una capacidad. Una capacidad
// desconocida devuelve nil, que el middleware trata como "solo autenticación".
func AllowedRoles(capability string) []string {
	return capabilities[capability]
}

// Allowed indica si el rol puede ejecutar la capacidad. Lista vacía = permitido
// para cualquier rol autenticado.
func Allowed(role, capability string) bool {
	roles := capabilities[capability]
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
