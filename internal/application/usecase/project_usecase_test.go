package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartunion/workforce-api/internal/application/usecase"
	"github.com/smartunion/workforce-api/internal/domain/entity"
)

func money(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestCostSummary_AgregadosDecimales(t *testing.T) {
	uc := usecase.NewProjectCostUseCase([]*entity.Project{
		{ID: "a", Name: "Alpha", Status: entity.ProjectActive, Budget: money(250000), Spent: money(180000)},
		{ID: "b", Name: "Delta", Status: entity.ProjectOverbudget, Budget: money(150000), Spent: money(165000)},
	})

	s := uc.Summary()
	assert.True(t, s.TotalBudget.Equal(money(400000)), "total budget: %s", s.TotalBudget)
	assert.True(t, s.TotalSpent.Equal(money(345000)), "total spent: %s", s.TotalSpent)
	// 345000/400000 = 86.25 %
	assert.True(t, s.Utilization.Equal(decimal.RequireFromString("86.3")), "utilización redondeada a 1 decimal: %s", s.Utilization)
	assert.Equal(t, 1, s.ActiveProjects)
	assert.Equal(t, 1, s.OverbudgetProjects)

	require.Len(t, s.Projects, 2)
	delta := s.Projects[1]
	assert.True(t, delta.Remaining.Equal(money(-15000)), "sobregiro negativo: %s", delta.Remaining)
	assert.True(t, delta.Utilization.Equal(decimal.RequireFromString("110")), "utilización: %s", delta.Utilization)
}

// Presupuesto cero (operación interna de oficina) no divide: utilización 0.
func TestCostSummary_PresupuestoCero(t *testing.T) {
	uc := usecase.NewProjectCostUseCase([]*entity.Project{
		{ID: "o", Name: "Office Operations", Status: entity.ProjectActive, Budget: decimal.Zero, Spent: decimal.Zero},
	})

	s := uc.Summary()
	assert.True(t, s.Utilization.IsZero())
	assert.True(t, s.Projects[0].Utilization.IsZero())
}

// La vista general lista los proyectos sin exponer montos.
func TestProjectList_VistaGeneralSinMontos(t *testing.T) {
	uc := usecase.NewProjectCostUseCase([]*entity.Project{
		{ID: "a", Name: "Project Alpha", Location: "North Site", Manager: "Mike Manager",
			Status: entity.ProjectActive, Budget: money(250000), Spent: money(180000)},
		{ID: "g", Name: "Project Gamma", Location: "East Campus", Manager: "Sarah Wilson",
			Status: entity.ProjectPlanning, Budget: money(180000), Spent: money(45000)},
	})

	out := uc.List()
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Project Alpha", out.Items[0].Name)
	assert.Equal(t, entity.ProjectPlanning, out.Items[1].Status)
	assert.Equal(t, "East Campus", out.Items[1].Location)
}
