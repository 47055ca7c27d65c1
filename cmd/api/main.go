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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/qlkp/reciclaje-api/docs" // registro del swagger generado
	appanalytics "github.com/qlkp/reciclaje-api/internal/application/analytics"
	"github.com/qlkp/reciclaje-api/internal/application/auth"
	"github.com/qlkp/reciclaje-api/internal/application/ledger"
	"github.com/qlkp/reciclaje-api/internal/application/report"
	"github.com/qlkp/reciclaje-api/internal/application/usecase"
	infraexcel "github.com/qlkp/reciclaje-api/internal/infrastructure/excel"
	infrapdf "github.com/qlkp/reciclaje-api/internal/infrastructure/pdf"
	"github.com/qlkp/reciclaje-api/internal/infrastructure/postgres"
	httpRouter "github.com/qlkp/reciclaje-api/internal/interfaces/http"
	"github.com/qlkp/reciclaje-api/migrations"
	"github.com/qlkp/reciclaje-api/pkg/config"
	"github.com/qlkp/reciclaje-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	if err := migrations.Up(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Msg("esquema al día")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	materialRepo := postgres.NewMaterialRepository(pool)
	partnerRepo := postgres.NewPartnerRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := ledger.NewLedgerUseCase(txRunner, txRepo)
	materialUC := usecase.NewMaterialUseCase(materialRepo, txRepo)
	partnerUC := usecase.NewPartnerUseCase(partnerRepo)
	staffUC := usecase.NewStaffUseCase(userRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(reportRepo, txRepo)
	reportUC := report.NewReportUseCase(
		txRepo, reportRepo,
		infraexcel.NewLedgerExporter(),
		infrapdf.NewCashFlowPDFGenerator(),
	)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los reportes PDF/Excel pueden tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Reciclaje API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		MaterialUC:  materialUC,
		PartnerUC:   partnerUC,
		StaffUC:     staffUC,
		LedgerUC:    ledgerUC,
		DashboardUC: dashboardUC,
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
