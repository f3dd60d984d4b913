package entity

import "time"

// Roles válidos para User.
const (
	RoleMasterAdmin = "master_admin"
	RoleAdmin       = "admin"
	RoleClient      = "client"
	RoleAuditor     = "auditor"
)

// ValidRole indica si el string corresponde a un rol conocido.
func ValidRole(role string) bool {
	switch role {
	case RoleMasterAdmin, RoleAdmin, RoleClient, RoleAuditor:
		return true
	}
	return false
}

// User representa un usuario del sistema (pertenece a un Tenant).
// Username y Email son únicos a nivel global, no por tenant.
type User struct {
	ID           string
	TenantID     string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Role         string // master_admin, admin, client, auditor
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken token de refresco emitido a un usuario. Se elimina en cascada con el usuario.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string // sha256 del token opaco, nunca el token en claro
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}
