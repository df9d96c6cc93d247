package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/vision360/internal/application/dashboard"
	"github.com/tu-usuario/vision360/internal/application/ingest"
	"github.com/tu-usuario/vision360/internal/domain/sample"
	"github.com/tu-usuario/vision360/internal/infrastructure/memory"
	"github.com/tu-usuario/vision360/internal/infrastructure/tabular"
	httpRouter "github.com/tu-usuario/vision360/internal/interfaces/http"
	"github.com/tu-usuario/vision360/pkg/config"
	"github.com/tu-usuario/vision360/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Datasets iniciales: los de ejemplo, reproducibles por semilla
	params := sample.Params{
		Seed:      cfg.Sample.Seed,
		Products:  cfg.Sample.Products,
		Days:      cfg.Sample.Days,
		Stores:    cfg.Sample.Stores,
		Suppliers: cfg.Sample.Suppliers,
	}
	data := sample.Generate(params)
	store := memory.NewDatasetStore(data.Inventory, data.Sales, data.Purchases)
	log.Info().
		Int64("seed", params.Seed).
		Int("inventory", len(data.Inventory)).
		Int("sales", len(data.Sales)).
		Int("purchases", len(data.Purchases)).
		Msg("datos de ejemplo cargados")

	dashboardUC := dashboard.NewUseCase(store, cfg.Cache.Size)
	ingestUC := ingest.NewUseCase(tabular.NewReader(), store, params)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		IngestUC:    ingestUC,
		Log:         log,
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
