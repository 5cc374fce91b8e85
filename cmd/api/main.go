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

	"github.com/jhoicas/Almacen-api/internal/application/cart"
	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/importer"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/replenishment"
	"github.com/jhoicas/Almacen-api/internal/application/reports"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Almacen-api/internal/interfaces/http"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
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
		Str("storage", cfg.Storage.Driver).
		Str("central", cfg.Stock.Central).
		Strs("sites", cfg.Stock.Sites).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var snapshotRepo repository.SnapshotRepository
	var auditRepo repository.AuditRepository

	switch cfg.Storage.Driver {
	case "memory":
		store := memory.NewStore()
		snapshotRepo, auditRepo = store, store
		log.Warn().Msg("storage en memoria: los datos no sobreviven al proceso")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		snapshotRepo = postgres.NewSnapshotRepository(pool)
		auditRepo = postgres.NewAuditRepository(pool)
	}

	sessions := cart.NewManager()

	catalogUC := catalog.New(snapshotRepo, cfg.Stock)
	importUC := importer.NewImportUseCase(snapshotRepo, cfg.Stock)
	replenishmentUC := replenishment.New(snapshotRepo, cfg.Stock)
	cartUC := cart.New(snapshotRepo, auditRepo, sessions, cfg.Stock)
	ledgerUC := ledger.New(snapshotRepo, auditRepo, cfg.Stock)
	reportsUC := reports.New(replenishmentUC, auditRepo)

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
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:       catalogUC,
		ImportUC:        importUC,
		ReplenishmentUC: replenishmentUC,
		CartUC:          cartUC,
		LedgerUC:        ledgerUC,
		ReportsUC:       reportsUC,
		Stock:           cfg.Stock,
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
