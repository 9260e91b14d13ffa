package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/smartunion/workforce-api/internal/application/dto"
	"github.com/smartunion/workforce-api/internal/application/usecase"
	"github.com/smartunion/workforce-api/internal/domain"
)

// LookupHandler maneja una colección de datos maestros (job titles, work
// groups, departments o project types). Las cuatro colecciones comparten el
// mismo CRUD, así que el router instancia este handler cuatro veces.
type LookupHandler struct {
	uc *usecase.LookupUseCase
}

// NewLookupHandler construye el handler para una colección.
func NewLookupHandler(uc *usecase.LookupUseCase) *LookupHandler {
	return &LookupHandler{uc: uc}
}

// List godoc
// @Summary      Listar una colección de datos maestros
// @Tags         master-data
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LookupListResponse
// @Router       /api/master-data/{collection} [get]
func (h *LookupHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear un dato maestro
// @Tags         master-data
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLookupRequest  true  "name, description"
// @Success      201   {object}  dto.LookupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/master-data/{collection} [post]
func (h *LookupHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLookupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar un dato maestro (parche parcial)
// @Tags         master-data
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.UpdateLookupRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.LookupResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/master-data/{collection}/{id} [put]
func (h *LookupHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateLookupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un dato maestro
// @Tags         master-data
// @Security     Bearer
// @Param        id  path  string  true  "ID del registro"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/master-data/{collection}/{id} [delete]
func (h *LookupHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
