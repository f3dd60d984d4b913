package dto

// RegisterRequest registro self-service: crea el tenant y su primer usuario
// (master_admin) en una sola operación.
type RegisterRequest struct {
	TenantName string `json:"tenant_name" validate:"required,min=1,max=200"`
	Subdomain  string `json:"subdomain" validate:"omitempty,alphanum,max=63"`
	Username   string `json:"username" validate:"required,min=3,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	FullName   string `json:"full_name" validate:"omitempty,max=200"`
}

// LoginRequest entrada para login: username o email + password.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el par de tokens y el usuario autenticado.
type LoginResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// RefreshRequest entrada para rotar el refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterResponse salida del registro: tenant creado + usuario master_admin.
type RegisterResponse struct {
	Tenant TenantResponse `json:"tenant"`
	User   UserResponse   `json:"user"`
}
