package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/vision360/internal/application/dashboard"
	"github.com/tu-usuario/vision360/internal/application/dto"
	"github.com/tu-usuario/vision360/internal/domain"
)

// DashboardHandler maneja el endpoint principal del panel consolidado.
type DashboardHandler struct {
	uc *dashboard.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard devuelve la visión 360° para la configuración de filtros.
// POST /api/dashboard
//
// Cuerpo: dto.FilterRequest. Un cuerpo vacío equivale a "sin filtros"
// (sentinela "todos" en cada dimensión, sin rango de fechas).
// Respuesta: dto.DashboardDTO.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	req, err := parseFilters(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}

	result, err := h.uc.GetDashboard(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "filtros inválidos: el rango de fechas va completo o no va",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(result)
}

// parseFilters acepta cuerpo vacío como petición sin filtros.
func parseFilters(c *fiber.Ctx) (dto.FilterRequest, error) {
	var req dto.FilterRequest
	if len(c.Body()) == 0 {
		return req, nil
	}
	if err := c.BodyParser(&req); err != nil {
		return dto.FilterRequest{}, err
	}
	return req, nil
}
