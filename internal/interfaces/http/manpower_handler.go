package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/smartunion/workforce-api/internal/application/dto"
	"github.com/smartunion/workforce-api/internal/application/usecase"
	"github.com/smartunion/workforce-api/internal/domain"
)

// ManpowerHandler maneja la bitácora diaria de despliegue.
type ManpowerHandler struct {
	uc *usecase.ManpowerUseCase
}

// NewManpowerHandler construye el handler.
func NewManpowerHandler(uc *usecase.ManpowerUseCase) *ManpowerHandler {
	return &ManpowerHandler{uc: uc}
}

// Log godoc
// @Summary      Registrar o corregir el despliegue del día de un badge
// @Tags         manpower
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LogManpowerRequest  true  "badge_number, project; date opcional"
// @Success      200   {object}  dto.ManpowerLogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/manpower [post]
func (h *ManpowerHandler) Log(c *fiber.Ctx) error {
	var in dto.LogManpowerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Log(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "badge_number y project son requeridos; date debe ser YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Bitácora de un día agrupada por proyecto
// @Tags         manpower
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha YYYY-MM-DD (por defecto hoy)"
// @Success      200   {object}  dto.ManpowerListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/manpower [get]
func (h *ManpowerHandler) List(c *fiber.Ctx) error {
	date := c.Query("date", time.Now().Format("2006-01-02"))
	out, err := h.uc.ListByDate(date)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
