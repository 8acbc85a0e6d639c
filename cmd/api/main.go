package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Consola-api/internal/application/auth"
	"github.com/jhoicas/Consola-api/internal/application/modules"
	"github.com/jhoicas/Consola-api/internal/application/usecase"
	infraexport "github.com/jhoicas/Consola-api/internal/infrastructure/export"
	"github.com/jhoicas/Consola-api/internal/infrastructure/mailer"
	infrapdf "github.com/jhoicas/Consola-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Consola-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Consola-api/internal/interfaces/http"
	"github.com/jhoicas/Consola-api/pkg/config"
	"github.com/jhoicas/Consola-api/pkg/logger"
	"github.com/jhoicas/Consola-api/pkg/metrics"
)

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
	teamRepo := postgres.NewTeamRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	groupRepo := postgres.NewGroupRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	otpRepo := postgres.NewOTPRepository(pool)
	secretRepo := postgres.NewSecretRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	otpMailer, err := mailer.NewGomailMailer(cfg.SMTP, cfg.App.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("plantilla de correo OTP")
	}

	authUC := auth.NewAuthUseCase(
		userRepo, tenantRepo, otpRepo, sessionRepo, otpMailer,
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		auth.OTPConfig{
			Length: cfg.OTP.Length,
			Expiry: time.Duration(cfg.OTP.ExpiryMinutes) * time.Minute,
		},
		log,
	)

	permSvc := usecase.NewPermissionService(groupRepo, roleRepo)
	tenantUC := usecase.NewTenantUseCase(tenantRepo)
	teamUC := usecase.NewTeamUseCase(teamRepo, tenantRepo, txRunner)
	roleUC := usecase.NewRoleUseCase(roleRepo, txRunner)
	groupUC := usecase.NewGroupUseCase(groupRepo, teamRepo, userRepo, roleRepo, txRunner)
	userUC := usecase.NewUserUseCase(userRepo, teamRepo, txRunner)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	xmlBuilder := infraexport.NewEtreeXMLBuilder()
	vaultUC := modules.NewVaultUseCase(secretRepo)
	financialsUC := modules.NewFinancialsUseCase(transactionRepo)
	reportingUC := modules.NewReportingUseCase(reportRepo, teamRepo, pdfGenerator, xmlBuilder)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Consola API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		Perms:        permSvc,
		TenantUC:     tenantUC,
		TeamUC:       teamUC,
		RoleUC:       roleUC,
		GroupUC:      groupUC,
		UserUC:       userUC,
		VaultUC:      vaultUC,
		FinancialsUC: financialsUC,
		ReportingUC:  reportingUC,
		JWTSecret:    cfg.JWT.Secret,
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
