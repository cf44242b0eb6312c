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

	"github.com/eco-stock/eco-stock-api/internal/application/auth"
	"github.com/eco-stock/eco-stock-api/internal/application/expiration"
	"github.com/eco-stock/eco-stock-api/internal/application/ledger"
	"github.com/eco-stock/eco-stock-api/internal/application/reports"
	"github.com/eco-stock/eco-stock-api/internal/application/usecase"
	infrapdf "github.com/eco-stock/eco-stock-api/internal/infrastructure/pdf"
	"github.com/eco-stock/eco-stock-api/internal/infrastructure/postgres"
	httpRouter "github.com/eco-stock/eco-stock-api/internal/interfaces/http"
	"github.com/eco-stock/eco-stock-api/pkg/config"
	"github.com/eco-stock/eco-stock-api/pkg/logger"
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

	// Repositorios atados al pool (lecturas); las mutaciones del libro de
	// inventario pasan por el TxRunner.
	categoryRepo := postgres.NewCategoryRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	productSupplierRepo := postgres.NewProductSupplierRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	expirationRepo := postgres.NewExpirationRepository(pool)
	reportingRepo := postgres.NewReportingRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, unitRepo, inventoryRepo, productSupplierRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo)
	ledgerUC := ledger.NewUseCase(txRunner, productRepo, inventoryRepo, movementRepo)
	expirationUC := expiration.NewUseCase(expirationRepo, productRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportsUC := reports.NewUseCase(reportingRepo, reportRepo, expirationRepo, pdfGenerator)

	authUC := auth.NewUseCase(userRepo, roleRepo, auth.JWTConfig{
		Secret:         cfg.JWT.Secret,
		AccessMinutes:  cfg.JWT.AccessMinutes,
		RefreshMinutes: cfg.JWT.RefreshMinutes,
		Issuer:         cfg.JWT.Issuer,
	})

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
		Title:    "EcoStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:   categoryUC,
		UnitUC:       unitUC,
		ProductUC:    productUC,
		SupplierUC:   supplierUC,
		UserUC:       userUC,
		AuthUC:       authUC,
		LedgerUC:     ledgerUC,
		ExpirationUC: expirationUC,
		ReportsUC:    reportsUC,
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
