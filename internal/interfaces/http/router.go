package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Auditoria-api/internal/application/auth"
	"github.com/jhoicas/Auditoria-api/internal/application/reports"
	"github.com/jhoicas/Auditoria-api/internal/application/usecase"
	"github.com/jhoicas/Auditoria-api/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	TenantUC    *usecase.TenantUseCase
	UserUC      *usecase.UserUseCase
	AuditUC     *usecase.AuditUseCase
	AuditExport *usecase.AuditExportUseCase
	LeadUC      *usecase.LeadUseCase
	IndustryUC  *usecase.IndustryUseCase
	AuditTypeUC *usecase.AuditTypeUseCase
	ReportUC    *reports.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Los roles por operación salen de la
// tabla de capacidades del paquete access; las rutas sin capacidad asociada
// solo exigen autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, salvo logout)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Tenants (solo master_admin)
	tenants := protected.Group("/tenants", RequireRole(access.AllowedRoles(access.TenantManage)...))
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants.Post("/", tenantHandler.Create)
	tenants.Get("/", tenantHandler.List)
	tenants.Get("/:id", tenantHandler.GetByID)
	tenants.Put("/:id", tenantHandler.Update)
	tenants.Delete("/:id", tenantHandler.Delete)

	// Users (administración, solo admin)
	users := protected.Group("/users", RequireRole(access.AllowedRoles(access.UserManage)...))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Audits (CRUD para cualquier miembro; transiciones según capacidad)
	audits := protected.Group("/audits")
	auditHandler := NewAuditHandler(deps.AuditUC, deps.AuditExport)
	audits.Post("/", auditHandler.Create)
	audits.Get("/", auditHandler.List)
	audits.Get("/:id", auditHandler.GetByID)
	audits.Put("/:id", auditHandler.Update)
	audits.Delete("/:id", auditHandler.Delete)
	audits.Get("/:id/pdf", auditHandler.ExportPDF)
	audits.Post("/:id/submit-for-review", RequireRole(access.AllowedRoles(access.AuditSubmitForReview)...), auditHandler.SubmitForReview)
	audits.Post("/:id/approve", RequireRole(access.AllowedRoles(access.AuditApprove)...), auditHandler.Approve)
	audits.Post("/:id/reject", RequireRole(access.AllowedRoles(access.AuditReject)...), auditHandler.Reject)
	audits.Post("/:id/close", RequireRole(access.AllowedRoles(access.AuditClose)...), auditHandler.Close)

	// Leads (CRUD para cualquier miembro; transiciones según capacidad)
	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads.Post("/", leadHandler.Create)
	leads.Get("/", leadHandler.List)
	leads.Get("/:id", leadHandler.GetByID)
	leads.Put("/:id", leadHandler.Update)
	leads.Delete("/:id", leadHandler.Delete)
	leads.Post("/:id/qualify", RequireRole(access.AllowedRoles(access.LeadQualify)...), leadHandler.Qualify)
	leads.Post("/:id/start-progress", RequireRole(access.AllowedRoles(access.LeadStartProgress)...), leadHandler.StartProgress)
	leads.Post("/:id/convert", RequireRole(access.AllowedRoles(access.LeadConvert)...), leadHandler.Convert)
	leads.Post("/:id/close", RequireRole(access.AllowedRoles(access.LeadClose)...), leadHandler.Close)

	// Catálogos (cualquier miembro autenticado)
	industries := protected.Group("/industries")
	industryHandler := NewLookupHandler(deps.IndustryUC)
	industries.Post("/", industryHandler.Create)
	industries.Get("/", industryHandler.List)
	industries.Get("/:id", industryHandler.GetByID)
	industries.Put("/:id", industryHandler.Update)
	industries.Delete("/:id", industryHandler.Delete)

	auditTypes := protected.Group("/audit-types")
	auditTypeHandler := NewLookupHandler(deps.AuditTypeUC)
	auditTypes.Post("/", auditTypeHandler.Create)
	auditTypes.Get("/", auditTypeHandler.List)
	auditTypes.Get("/:id", auditTypeHandler.GetByID)
	auditTypes.Put("/:id", auditTypeHandler.Update)
	auditTypes.Delete("/:id", auditTypeHandler.Delete)

	// Reportes y dashboard (cualquier miembro autenticado)
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/audits", reportHandler.AuditReport)
	reportsGroup.Get("/leads", reportHandler.LeadReport)
	protected.Get("/dashboard/stats", reportHandler.Dashboard)
	protected.Get("/dashboard", reportHandler.Dashboard) // alias de /dashboard/stats
}
