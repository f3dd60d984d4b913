package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Auditoria-api/internal/application/auth"
	"github.com/jhoicas/Auditoria-api/internal/application/reports"
	"github.com/jhoicas/Auditoria-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Auditoria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Auditoria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Auditoria-api/internal/interfaces/http"
	"github.com/jhoicas/Auditoria-api/pkg/config"
	"github.com/jhoicas/Auditoria-api/pkg/logger"
)

const swaggerSpecPath = "./docs/swagger.json"

// mountSwagger registra la UI de Swagger en /docs solo si el spec generado
// existe: swagger.New entra en pánico con el archivo ausente, y la API debe
// arrancar igual sin él.
func mountSwagger(app *fiber.App, log *logger.Logger) {
	if _, err := os.Stat(swaggerSpecPath); err != nil {
		log.Warn().Str("path", swaggerSpecPath).Msg("swagger.json no encontrado, UI de /docs deshabilitada")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: swaggerSpecPath,
		Path:     "docs",
		Title:    "AuditoríaPro API",
	}))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	tenantRepo := postgres.NewTenantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	tokenRepo := postgres.NewRefreshTokenRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	industryRepo := postgres.NewIndustryRepository(pool)
	auditTypeRepo := postgres.NewAuditTypeRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, tenantRepo, tokenRepo, txRunner, auth.JWTConfig{
		Secret:          cfg.JWT.Secret,
		ExpMinutes:      cfg.JWT.Expiration,
		RefreshExpHours: cfg.JWT.RefreshExpiration,
		Issuer:          cfg.JWT.Issuer,
	})
	tenantUC := usecase.NewTenantUseCase(tenantRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	auditUC := usecase.NewAuditUseCase(auditRepo)
	leadUC := usecase.NewLeadUseCase(leadRepo)
	industryUC := usecase.NewIndustryUseCase(industryRepo)
	auditTypeUC := usecase.NewAuditTypeUseCase(auditTypeRepo)
	reportUC := reports.NewReportUseCase(reportRepo)

	// PDF: resumen imprimible de una auditoría
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	auditExportUC := usecase.NewAuditExportUseCase(
		auditRepo, tenantRepo, industryRepo, auditTypeRepo, pdfGenerator,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	mountSwagger(app, log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		TenantUC:    tenantUC,
		UserUC:      userUC,
		AuditUC:     auditUC,
		AuditExport: auditExportUC,
		LeadUC:      leadUC,
		IndustryUC:  industryUC,
		AuditTypeUC: auditTypeUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
