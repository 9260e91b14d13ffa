package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartunion/workforce-api/internal/domain/entity"
)

// Seeds datos representativos con los que arranca el modo local. Centraliza el
// contrato de "qué se sirve sin backend"; los tests reutilizan este mismo set.
type Seeds struct {
	JobTitles    []*entity.Lookup
	WorkGroups   []*entity.Lookup
	Departments  []*entity.Lookup
	ProjectTypes []*entity.Lookup
	Employees    []*entity.Employee
	Equipment    []*entity.Equipment
	Projects     []*entity.Project
}

// DefaultSeeds construye el set demo. Los ids se sintetizan por proceso: el
// modo local no garantiza identidad entre reinicios.
func DefaultSeeds() *Seeds {
	seeded := time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)

	lookup := func(name, description string) *entity.Lookup {
		return &entity.Lookup{
			ID:          uuid.New().String(),
			Name:        name,
			Description: description,
			CreatedAt:   seeded,
		}
	}

	jobTitles := []*entity.Lookup{
		lookup("Senior Engineer", "Ingeniería de obra con experiencia"),
		lookup("Software Developer", "Desarrollo de aplicaciones internas"),
		lookup("HR Manager", "Gestión de recursos humanos"),
		lookup("Operations Manager", "Coordinación de operaciones"),
		lookup("Project Coordinator", "Seguimiento de proyectos"),
	}
	workGroups := []*entity.Lookup{
		lookup("Day Shift", "Turno de día 08:00-17:00"),
		lookup("Night Shift", "Turno nocturno 20:00-05:00"),
		lookup("Maintenance Crew", "Cuadrilla de mantenimiento"),
	}
	departments := []*entity.Lookup{
		lookup("Administration", "Administración general"),
		lookup("Human Resources", "Personal y nómina"),
		lookup("Engineering", "Ingeniería y desarrollo"),
		lookup("Operations", "Operaciones de campo"),
		lookup("Accounting", "Contabilidad y finanzas"),
	}
	projectTypes := []*entity.Lookup{
		lookup("Infrastructure", "Obras de infraestructura"),
		lookup("Commercial", "Proyectos comerciales"),
		lookup("Internal", "Operación interna de oficina"),
	}

	employee := func(first, last, email, badge string, hired time.Time, jt, dept, wg, pt *entity.Lookup) *entity.Employee {
		return &entity.Employee{
			ID:            uuid.New().String(),
			FirstName:     first,
			LastName:      last,
			Email:         email,
			Phone:         "+1-555-0100",
			BadgeNumber:   badge,
			HireDate:      hired,
			JobTitleID:    jt.ID,
			DepartmentID:  dept.ID,
			WorkGroupID:   wg.ID,
			ProjectTypeID: pt.ID,
			IsActive:      true,
			CreatedAt:     seeded,
		}
	}

	employees := []*entity.Employee{
		employee("John", "Smith", "john.smith@company.com", "ENG001",
			time.Date(2022, 3, 14, 0, 0, 0, 0, time.UTC),
			jobTitles[0], departments[2], workGroups[0], projectTypes[0]),
		employee("Jane", "Doe", "jane.doe@company.com", "ENG002",
			time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			jobTitles[1], departments[2], workGroups[0], projectTypes[1]),
		employee("Sarah", "Wilson", "sarah.wilson@company.com", "HR001",
			time.Date(2021, 9, 20, 0, 0, 0, 0, time.UTC),
			jobTitles[2], departments[1], workGroups[0], projectTypes[2]),
		employee("Kevin", "Brown", "kevin.brown@company.com", "OPS001",
			time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC),
			jobTitles[3], departments[3], workGroups[1], projectTypes[0]),
		employee("Amanda", "Taylor", "amanda.taylor@company.com", "OFC001",
			time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC),
			jobTitles[4], departments[0], workGroups[2], projectTypes[2]),
	}

	equipment := []*entity.Equipment{
		{ID: uuid.New().String(), Name: "Dell Latitude 5520", Category: "laptop",
			SerialNumber: "DL-2024-0117", Status: entity.EquipmentAssigned, AssignedTo: "EMP001"},
		{ID: uuid.New().String(), Name: "Hilti TE 70 Drill", Category: "tool",
			SerialNumber: "HT-2023-0442", Status: entity.EquipmentAssigned, AssignedTo: "ENG001"},
		{ID: uuid.New().String(), Name: "Lincoln Welding Machine", Category: "tool",
			SerialNumber: "LW-2022-0091", Status: entity.EquipmentAvailable},
		{ID: uuid.New().String(), Name: "Honda 5kW Generator", Category: "machinery",
			SerialNumber: "HG-2021-0008", Status: entity.EquipmentMaintenance},
		{ID: uuid.New().String(), Name: "Safety Harness Set", Category: "safety",
			SerialNumber: "SH-2024-0203", Status: entity.EquipmentAvailable},
	}

	money := func(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
	projects := []*entity.Project{
		{ID: uuid.New().String(), Name: "Project Alpha", Location: "North Site",
			Manager: "Mike Manager", Status: entity.ProjectActive,
			Budget: money(250000), Spent: money(180000)},
		{ID: uuid.New().String(), Name: "Project Beta", Location: "Harbor District",
			Manager: "Kevin Brown", Status: entity.ProjectActive,
			Budget: money(500000), Spent: money(320000)},
		{ID: uuid.New().String(), Name: "Project Gamma", Location: "East Campus",
			Manager: "Amanda Taylor", Status: entity.ProjectPlanning,
			Budget: money(180000), Spent: money(45000)},
		{ID: uuid.New().String(), Name: "Project Delta", Location: "South Yard",
			Manager: "Mike Manager", Status: entity.ProjectOverbudget,
			Budget: money(150000), Spent: money(165000)},
	}

	return &Seeds{
		JobTitles:    jobTitles,
		WorkGroups:   workGroups,
		Departments:  departments,
		ProjectTypes: projectTypes,
		Employees:    employees,
		Equipment:    equipment,
		Projects:     projects,
	}
}
