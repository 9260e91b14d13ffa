package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/smartunion/workforce-api/internal/application/session"
	"github.com/smartunion/workforce-api/internal/application/usecase"
	"github.com/smartunion/workforce-api/internal/domain/entity"
	"github.com/smartunion/workforce-api/internal/domain/repository"
	"github.com/smartunion/workforce-api/internal/infrastructure/failover"
	"github.com/smartunion/workforce-api/internal/infrastructure/memory"
	infrapdf "github.com/smartunion/workforce-api/internal/infrastructure/pdf"
	"github.com/smartunion/workforce-api/internal/infrastructure/postgres"
	httpRouter "github.com/smartunion/workforce-api/internal/interfaces/http"
	"github.com/smartunion/workforce-api/pkg/config"
	"github.com/smartunion/workforce-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	seeds := memory.DefaultSeeds()

	// Stores locales: modo mock standalone y a la vez respaldo de lectura
	// cuando el backend remoto está configurado pero caído.
	localJobTitles := memory.NewLookupStore(entity.CollectionJobTitles, seeds.JobTitles)
	localWorkGroups := memory.NewLookupStore(entity.CollectionWorkGroups, seeds.WorkGroups)
	localDepartments := memory.NewLookupStore(entity.CollectionDepartments, seeds.Departments)
	localProjectTypes := memory.NewLookupStore(entity.CollectionProjectTypes, seeds.ProjectTypes)
	localEmployees := memory.NewEmployeeStore(seeds.Employees)

	var (
		jobTitlesRepo    repository.LookupRepository   = localJobTitles
		workGroupsRepo   repository.LookupRepository   = localWorkGroups
		departmentsRepo  repository.LookupRepository   = localDepartments
		projectTypesRepo repository.LookupRepository   = localProjectTypes
		employeesRepo    repository.EmployeeRepository = localEmployees
	)

	// La selección de backend es una decisión de arranque: con credenciales
	// reales se usa el remoto con failover de lectura, en cualquier otro caso
	// el proceso corre entero sobre los datos locales.
	if cfg.Backend.Configured() {
		pool, err := postgres.NewPool(ctx, cfg.Backend)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión al backend remoto")
		}
		defer pool.Close()

		jobTitlesRepo = failover.NewLookupFailover(entity.CollectionJobTitles,
			postgres.NewLookupRepository(pool, entity.CollectionJobTitles), localJobTitles, log)
		workGroupsRepo = failover.NewLookupFailover(entity.CollectionWorkGroups,
			postgres.NewLookupRepository(pool, entity.CollectionWorkGroups), localWorkGroups, log)
		departmentsRepo = failover.NewLookupFailover(entity.CollectionDepartments,
			postgres.NewLookupRepository(pool, entity.CollectionDepartments), localDepartments, log)
		projectTypesRepo = failover.NewLookupFailover(entity.CollectionProjectTypes,
			postgres.NewLookupRepository(pool, entity.CollectionProjectTypes), localProjectTypes, log)
		employeesRepo = failover.NewEmployeeFailover(postgres.NewEmployeeRepository(pool), localEmployees, log)

		log.Info().Msg("backend remoto configurado, datos locales como respaldo de lectura")
	} else {
		log.Info().Msg("backend remoto no configurado, usando datos locales")
	}

	sessions := session.NewManager(session.DefaultDirectory(), session.NewFileStore(cfg.Session.Dir), log)

	masterData := &usecase.MasterData{
		JobTitles:    usecase.NewLookupUseCase(jobTitlesRepo),
		WorkGroups:   usecase.NewLookupUseCase(workGroupsRepo),
		Departments:  usecase.NewLookupUseCase(departmentsRepo),
		ProjectTypes: usecase.NewLookupUseCase(projectTypesRepo),
	}
	employeeUC := usecase.NewEmployeeUseCase(employeesRepo, masterData)
	attendanceUC := usecase.NewAttendanceUseCase(nil)
	manpowerUC := usecase.NewManpowerUseCase(nil)
	equipmentUC := usecase.NewEquipmentUseCase(seeds.Equipment)
	projectUC := usecase.NewProjectCostUseCase(seeds.Projects)
	dashboardUC := usecase.NewDashboardUseCase(employeesRepo, attendanceUC, equipmentUC, projectUC)
	reportUC := usecase.NewReportUseCase(employeeUC, infrapdf.NewMarotoRosterGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El artefacto lo
	// genera `swag init`; sin él, el mount se omite en vez de abortar.
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Workforce API",
		}))
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado, Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:     sessions,
		MasterData:   masterData,
		EmployeeUC:   employeeUC,
		AttendanceUC: attendanceUC,
		EquipmentUC:  equipmentUC,
		ManpowerUC:   manpowerUC,
		ProjectUC:    projectUC,
		DashboardUC:  dashboardUC,
		ReportUC:     reportUC,
		JWT:          cfg.JWT,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
