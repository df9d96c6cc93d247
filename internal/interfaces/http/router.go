package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/vision360/internal/application/dashboard"
	"github.com/tu-usuario/vision360/internal/application/ingest"
	"github.com/tu-usuario/vision360/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *dashboard.UseCase
	IngestUC    *ingest.UseCase
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Panel consolidado (visión 360°)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Post("/dashboard", dashboardHandler.GetDashboard)

	// Carga de datasets
	datasets := api.Group("/datasets")
	datasetHandler := NewDatasetHandler(deps.IngestUC, deps.Log)
	datasets.Post("/sample", datasetHandler.LoadSample)
	datasets.Post("/:kind", datasetHandler.Upload)

	// Exportación CSV
	exports := api.Group("/export")
	exportHandler := NewExportHandler(deps.DashboardUC)
	exports.Post("/consolidated", exportHandler.Consolidated)
	exports.Post("/critical", exportHandler.Critical)
}
