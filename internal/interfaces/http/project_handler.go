package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartunion/workforce-api/internal/application/usecase"
)

// ProjectHandler maneja la vista financiera de proyectos.
type ProjectHandler struct {
	uc *usecase.ProjectCostUseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *usecase.ProjectCostUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// List godoc
// @Summary      Listar proyectos (vista general, sin montos)
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProjectListResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Costs godoc
// @Summary      Costos y utilización de presupuesto por proyecto
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CostSummaryResponse
// @Router       /api/projects/costs [get]
func (h *ProjectHandler) Costs(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}
