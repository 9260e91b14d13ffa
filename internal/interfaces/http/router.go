package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartunion/workforce-api/internal/application/session"
	"github.com/smartunion/workforce-api/internal/application/usecase"
	"github.com/smartunion/workforce-api/internal/domain/entity"
	"github.com/smartunion/workforce-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions     *session.Manager
	MasterData   *usecase.MasterData
	EmployeeUC   *usecase.EmployeeUseCase
	AttendanceUC *usecase.AttendanceUseCase
	EquipmentUC  *usecase.EquipmentUseCase
	ManpowerUC   *usecase.ManpowerUseCase
	ProjectUC    *usecase.ProjectCostUseCase
	DashboardUC  *usecase.DashboardUseCase
	ReportUC     *usecase.ReportUseCase
	JWT          config.JWTConfig
}

// Router registra las rutas de la API. Cada grupo replica la visibilidad por
// rol de las páginas del dashboard: quien no ve la página, no llama la ruta.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; logout y me requieren token.
	authHandler := NewAuthHandler(deps.Sessions, deps.JWT)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWT.Secret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWT.Secret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token).
	protected := api.Group("/", AuthMiddleware(deps.JWT.Secret))

	allRoles := RequireRole(entity.RoleAdmin, entity.RoleHR, entity.RoleManager, entity.RoleEmployee)
	staffRoles := RequireRole(entity.RoleAdmin, entity.RoleHR, entity.RoleManager)
	financeRoles := RequireRole(entity.RoleAdmin, entity.RoleManager)
	hrRoles := RequireRole(entity.RoleAdmin, entity.RoleHR)

	// Dashboard (todos los roles).
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", allRoles, dashboardHandler.Summary)

	// Attendance (todos los roles; el badge sale del token).
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	attendance := protected.Group("/attendance", allRoles)
	attendance.Post("/check-in", attendanceHandler.CheckIn)
	attendance.Post("/check-out", attendanceHandler.CheckOut)
	attendance.Get("/summary", attendanceHandler.Summary)
	attendance.Get("/", attendanceHandler.List)

	// Equipment (todos los roles).
	equipmentHandler := NewEquipmentHandler(deps.EquipmentUC)
	equipment := protected.Group("/equipment", allRoles)
	equipment.Get("/", equipmentHandler.List)
	equipment.Post("/", equipmentHandler.Create)
	equipment.Post("/:id/assign", equipmentHandler.Assign)
	equipment.Post("/:id/unassign", equipmentHandler.Unassign)

	// Employees (admin, hr, manager).
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees := protected.Group("/employees", staffRoles)
	employees.Get("/directory", employeeHandler.Directory)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Reports (admin, hr, manager; misma visibilidad que el directorio).
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/roster", staffRoles, reportHandler.Roster)

	// Staff overview (admin, hr, manager).
	protected.Get("/staff/overview", staffRoles, employeeHandler.Overview)

	// Manpower logs (admin, hr, manager).
	manpowerHandler := NewManpowerHandler(deps.ManpowerUC)
	manpower := protected.Group("/manpower", staffRoles)
	manpower.Get("/", manpowerHandler.List)
	manpower.Post("/", manpowerHandler.Log)

	// Projects: vista general para el staff, costos solo admin y manager.
	projectHandler := NewProjectHandler(deps.ProjectUC)
	protected.Get("/projects/costs", financeRoles, projectHandler.Costs)
	protected.Get("/projects", staffRoles, projectHandler.List)

	// Master data (admin, hr): cuatro colecciones con el mismo CRUD.
	masterData := protected.Group("/master-data", hrRoles)
	registerLookupRoutes(masterData, "/job-titles", NewLookupHandler(deps.MasterData.JobTitles))
	registerLookupRoutes(masterData, "/work-groups", NewLookupHandler(deps.MasterData.WorkGroups))
	registerLookupRoutes(masterData, "/departments", NewLookupHandler(deps.MasterData.Departments))
	registerLookupRoutes(masterData, "/project-types", NewLookupHandler(deps.MasterData.ProjectTypes))
}

func registerLookupRoutes(parent fiber.Router, prefix string, h *LookupHandler) {
	g := parent.Group(prefix)
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
