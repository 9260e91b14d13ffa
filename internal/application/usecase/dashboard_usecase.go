package usecase

import (
	"context"

	"github.com/smartunion/workforce-api/internal/application/dto"
	"github.com/smartunion/workforce-api/internal/domain/repository"
)

// DashboardUseCase resumen de cabecera: nómina, asistencia del día, flota y
// totales financieros. Agrega sobre los demás casos de uso; no posee estado.
type DashboardUseCase struct {
	employees  repository.EmployeeRepository
	attendance *AttendanceUseCase
	equipment  *EquipmentUseCase
	costs      *ProjectCostUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	employees repository.EmployeeRepository,
	attendance *AttendanceUseCase,
	equipment *EquipmentUseCase,
	costs *ProjectCostUseCase,
) *DashboardUseCase {
	return &DashboardUseCase{
		employees:  employees,
		attendance: attendance,
		equipment:  equipment,
		costs:      costs,
	}
}

// Summary construye el resumen para la fecha indicada ("2006-01-02").
func (uc *DashboardUseCase) Summary(ctx context.Context, date string) (*dto.DashboardSummary, error) {
	attendance, err := uc.attendance.Summary(date)
	if err != nil {
		return nil, err
	}

	// La lectura de empleados pasa por el failover: un backend caído sirve
	// los datos locales, el dashboard nunca muestra un fallo duro.
	employees, err := uc.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	active := 0
	for _, e := range employees {
		if e.IsActive {
			active++
		}
	}

	budget, spent := uc.costs.Totals()

	return &dto.DashboardSummary{
		Date:             date,
		TotalEmployees:   len(employees),
		ActiveEmployees:  active,
		Attendance:       *attendance,
		EquipmentByState: uc.equipment.CountByStatus(),
		TotalBudget:      budget,
		TotalSpent:       spent,
	}, nil
}
