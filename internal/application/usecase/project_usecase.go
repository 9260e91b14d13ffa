package usecase

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/smartunion/workforce-api/internal/application/dto"
	"github.com/smartunion/workforce-api/internal/domain/entity"
)

// ProjectCostUseCase vista financiera de los proyectos. Estado local al
// proceso, sembrado; toda la aritmética de montos es decimal.
type ProjectCostUseCase struct {
	mu       sync.Mutex
	projects []*entity.Project
}

// NewProjectCostUseCase construye el caso de uso con los proyectos sembrados.
func NewProjectCostUseCase(seed []*entity.Project) *ProjectCostUseCase {
	projects := make([]*entity.Project, len(seed))
	copy(projects, seed)
	return &ProjectCostUseCase{projects: projects}
}

// List vista general de los proyectos, sin montos. Es la vista para todo el
// staff; el detalle financiero queda en Summary, con su propio gate de rol.
func (uc *ProjectCostUseCase) List() *dto.ProjectListResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := &dto.ProjectListResponse{Items: make([]dto.ProjectResponse, 0, len(uc.projects))}
	for _, p := range uc.projects {
		out.Items = append(out.Items, dto.ProjectResponse{
			ID:       p.ID,
			Name:     p.Name,
			Location: p.Location,
			Manager:  p.Manager,
			Status:   p.Status,
		})
	}
	return out
}

// Summary agrega presupuesto, gasto y utilización de todos los proyectos.
func (uc *ProjectCostUseCase) Summary() *dto.CostSummaryResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := &dto.CostSummaryResponse{
		TotalBudget: decimal.Zero,
		TotalSpent:  decimal.Zero,
		Projects:    make([]dto.ProjectCostResponse, 0, len(uc.projects)),
	}
	for _, p := range uc.projects {
		out.TotalBudget = out.TotalBudget.Add(p.Budget)
		out.TotalSpent = out.TotalSpent.Add(p.Spent)
		switch p.Status {
		case entity.ProjectActive:
			out.ActiveProjects++
		case entity.ProjectOverbudget:
			out.OverbudgetProjects++
		}
		out.Projects = append(out.Projects, *projectToResponse(p))
	}
	if !out.TotalBudget.IsZero() {
		out.Utilization = out.TotalSpent.Div(out.TotalBudget).Mul(decimal.NewFromInt(100)).Round(1)
	} else {
		out.Utilization = decimal.Zero
	}
	return out
}

// Totals presupuesto y gasto totales, para el dashboard.
func (uc *ProjectCostUseCase) Totals() (budget, spent decimal.Decimal) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	budget, spent = decimal.Zero, decimal.Zero
	for _, p := range uc.projects {
		budget = budget.Add(p.Budget)
		spent = spent.Add(p.Spent)
	}
	return budget, spent
}

func projectToResponse(p *entity.Project) *dto.ProjectCostResponse {
	return &dto.ProjectCostResponse{
		ID:          p.ID,
		Name:        p.Name,
		Location:    p.Location,
		Manager:     p.Manager,
		Status:      p.Status,
		Budget:      p.Budget,
		Spent:       p.Spent,
		Remaining:   p.Remaining(),
		Utilization: p.Utilization(),
	}
}
