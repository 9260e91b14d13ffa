package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/smartunion/workforce-api/internal/application/dto"
	"github.com/smartunion/workforce-api/internal/application/usecase"
	"github.com/smartunion/workforce-api/internal/domain"
)

// DashboardHandler maneja el resumen de cabecera del dashboard.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard para una fecha
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha YYYY-MM-DD (por defecto hoy)"
// @Success      200   {object}  dto.DashboardSummary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	date := c.Query("date", time.Now().Format("2006-01-02"))
	out, err := h.uc.Summary(c.Context(), date)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
