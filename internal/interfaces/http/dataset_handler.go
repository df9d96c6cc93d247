package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/vision360/internal/application/dto"
	"github.com/tu-usuario/vision360/internal/application/ingest"
	"github.com/tu-usuario/vision360/internal/domain"
	"github.com/tu-usuario/vision360/pkg/logger"
)

// DatasetHandler maneja la carga de datasets (archivo subido o regeneración
// de datos de ejemplo).
type DatasetHandler struct {
	uc  *ingest.UseCase
	log *logger.Logger
}

// NewDatasetHandler construye el handler.
func NewDatasetHandler(uc *ingest.UseCase, log *logger.Logger) *DatasetHandler {
	return &DatasetHandler{uc: uc, log: log}
}

// Upload reemplaza un dataset con el contenido de un archivo CSV/XLSX.
// POST /api/datasets/:kind  (kind: inventory | sales | purchases)
//
// multipart/form-data con el campo "file". La degradación de esquema nunca
// es error; solo una fuente ilegible como tabla responde 400.
func (h *DatasetHandler) Upload(c *fiber.Ctx) error {
	kind, err := ingest.ParseKind(c.Params("kind"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "UNKNOWN_DATASET", Message: "dataset desconocido: usar inventory, sales o purchases",
		})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "MISSING_FILE", Message: "falta el campo multipart 'file'",
		})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "UNREADABLE_SOURCE", Message: "no se pudo abrir el archivo",
		})
	}
	defer f.Close()

	rows, err := h.uc.LoadDataset(c.Context(), kind, fh.Filename, f)
	if err != nil {
		if errors.Is(err, domain.ErrSourceNotTabular) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "UNREADABLE_SOURCE", Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	h.log.Info().
		Str("dataset", string(kind)).
		Str("file", fh.Filename).
		Int("rows", rows).
		Msg("dataset reemplazado")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "dataset cargado",
		"dataset": string(kind),
		"rows":    rows,
	})
}

// sampleRequest cuerpo opcional de la regeneración de datos de ejemplo.
type sampleRequest struct {
	Seed *int64 `json:"seed"`
}

// LoadSample regenera los tres datasets sintéticos.
// POST /api/datasets/sample  — cuerpo opcional: {"seed": 42}
func (h *DatasetHandler) LoadSample(c *fiber.Ctx) error {
	var req sampleRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_BODY", Message: "cuerpo inválido",
			})
		}
	}

	if err := h.uc.LoadSample(c.Context(), req.Seed); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	h.log.Info().Msg("datos de ejemplo regenerados")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "datos de ejemplo cargados"})
}
