package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/smartunion/workforce-api/internal/application/dto"
	"github.com/smartunion/workforce-api/internal/application/usecase"
	"github.com/smartunion/workforce-api/internal/domain"
)

// AttendanceHandler maneja entrada/salida y consultas de asistencia. El badge
// sale siempre del token, nunca del cuerpo: un empleado solo marca por sí mismo.
type AttendanceHandler struct {
	uc *usecase.AttendanceUseCase
}

// NewAttendanceHandler construye el handler.
func NewAttendanceHandler(uc *usecase.AttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// CheckIn godoc
// @Summary      Registrar entrada de hoy
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.AttendanceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	badge := GetBadgeNumber(c)
	if badge == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_BADGE", Message: "badge_number no encontrado en el token"})
	}
	out, err := h.uc.CheckIn(badge)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyCheckedIn) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_CHECKED_IN", Message: "ya existe una entrada para hoy"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CheckOut godoc
// @Summary      Registrar salida de hoy
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AttendanceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	badge := GetBadgeNumber(c)
	if badge == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_BADGE", Message: "badge_number no encontrado en el token"})
	}
	out, err := h.uc.CheckOut(badge)
	if err != nil {
		if errors.Is(err, domain.ErrNoCheckIn) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_CHECK_IN", Message: "no hay entrada registrada hoy"})
		}
		if errors.Is(err, domain.ErrAlreadyCheckedOut) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_CHECKED_OUT", Message: "la salida de hoy ya fue registrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Registros de asistencia de un día
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha YYYY-MM-DD (por defecto hoy)"
// @Success      200   {object}  dto.AttendanceListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/attendance [get]
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
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

// Summary godoc
// @Summary      Agregados de asistencia de un día
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha YYYY-MM-DD (por defecto hoy)"
// @Success      200   {object}  dto.AttendanceSummary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/attendance/summary [get]
func (h *AttendanceHandler) Summary(c *fiber.Ctx) error {
	date := c.Query("date", time.Now().Format("2006-01-02"))
	out, err := h.uc.Summary(date)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
