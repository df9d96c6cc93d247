package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/vision360/internal/application/dashboard"
	"github.com/tu-usuario/vision360/internal/application/dto"
	"github.com/tu-usuario/vision360/internal/application/export"
	"github.com/tu-usuario/vision360/internal/domain"
	"github.com/tu-usuario/vision360/internal/domain/entity"
)

// ExportHandler descarga en CSV de la tabla consolidada o del subconjunto
// de productos críticos, con los mismos filtros que el panel.
type ExportHandler struct {
	uc *dashboard.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *dashboard.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Consolidated exporta la tabla consolidada completa.
// POST /api/export/consolidated — cuerpo: dto.FilterRequest (opcional)
func (h *ExportHandler) Consolidated(c *fiber.Ctx) error {
	return h.exportCSV(c, h.uc.ConsolidatedRows, export.ConsolidatedCSV, "consolidado.csv")
}

// Critical exporta los productos con riesgo de ruptura.
// POST /api/export/critical — cuerpo: dto.FilterRequest (opcional)
func (h *ExportHandler) Critical(c *fiber.Ctx) error {
	return h.exportCSV(c, h.uc.CriticalRows, export.CriticalCSV, "productos_criticos.csv")
}

func (h *ExportHandler) exportCSV(
	c *fiber.Ctx,
	fetch func(context.Context, dto.FilterRequest) ([]entity.ConsolidatedRow, error),
	serialize func([]entity.ConsolidatedRow) ([]byte, error),
	filename string,
) error {
	req, err := parseFilters(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}

	rows, err := fetch(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "filtros inválidos",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	data, err := serialize(rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
