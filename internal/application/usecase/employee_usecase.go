package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/smartunion/workforce-api/internal/application/dto"
	"github.com/smartunion/workforce-api/internal/domain"
	"github.com/smartunion/workforce-api/internal/domain/entity"
	"github.com/smartunion/workforce-api/internal/domain/repository"
)

const hireDateLayout = "2006-01-02"

// UnknownLabel etiqueta con la que se resuelve una referencia huérfana a un
// dato maestro borrado.
const UnknownLabel = "Unknown"

// EmployeeUseCase casos de uso del directorio de empleados.
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
	master    *MasterData
}

// NewEmployeeUseCase construye el caso de uso. master se usa para resolver
// nombres de lookup en la vista de directorio.
func NewEmployeeUseCase(employees repository.EmployeeRepository, master *MasterData) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees, master: master}
}

// List lista los registros crudos (referencias por id, sin resolver).
func (uc *EmployeeUseCase) List(ctx context.Context) (*dto.EmployeeListResponse, error) {
	list, err := uc.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *employeeToResponse(e))
	}
	return &dto.EmployeeListResponse{Items: items}, nil
}

// Create da de alta un empleado. Nombre, apellido y email son obligatorios.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	hireDate, err := parseHireDate(in.HireDate)
	if err != nil {
		return nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	e, err := uc.employees.Create(ctx, entity.EmployeeFields{
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Email:         strings.TrimSpace(in.Email),
		Phone:         in.Phone,
		BadgeNumber:   in.BadgeNumber,
		HireDate:      hireDate,
		JobTitleID:    in.JobTitleID,
		DepartmentID:  in.DepartmentID,
		WorkGroupID:   in.WorkGroupID,
		ProjectTypeID: in.ProjectTypeID,
		IsActive:      active,
	})
	if err != nil {
		return nil, err
	}
	return employeeToResponse(e), nil
}

// Update aplica un parche parcial. domain.ErrNotFound si el id no existe.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	patch := entity.EmployeePatch{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		Phone:         in.Phone,
		BadgeNumber:   in.BadgeNumber,
		JobTitleID:    in.JobTitleID,
		DepartmentID:  in.DepartmentID,
		WorkGroupID:   in.WorkGroupID,
		ProjectTypeID: in.ProjectTypeID,
		IsActive:      in.IsActive,
	}
	if in.HireDate != nil {
		hireDate, err := parseHireDate(*in.HireDate)
		if err != nil {
			return nil, err
		}
		patch.HireDate = &hireDate
	}
	e, err := uc.employees.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return employeeToResponse(e), nil
}

// Delete elimina por id. No hay cascada: los registros que referenciaban
// lookups de este empleado no se tocan.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	return uc.employees.Delete(ctx, id)
}

// Directory devuelve el directorio con los nombres de lookup resueltos; una
// referencia a un lookup borrado degrada a "Unknown" en lugar de fallar.
func (uc *EmployeeUseCase) Directory(ctx context.Context) (*dto.DirectoryResponse, error) {
	list, err := uc.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	jobTitles, err := lookupIndex(ctx, uc.master.JobTitles)
	if err != nil {
		return nil, err
	}
	departments, err := lookupIndex(ctx, uc.master.Departments)
	if err != nil {
		return nil, err
	}
	workGroups, err := lookupIndex(ctx, uc.master.WorkGroups)
	if err != nil {
		return nil, err
	}
	projectTypes, err := lookupIndex(ctx, uc.master.ProjectTypes)
	if err != nil {
		return nil, err
	}

	items := make([]dto.DirectoryEntry, 0, len(list))
	for _, e := range list {
		items = append(items, dto.DirectoryEntry{
			ID:          e.ID,
			FullName:    e.FullName(),
			Email:       e.Email,
			BadgeNumber: e.BadgeNumber,
			JobTitle:    resolveName(jobTitles, e.JobTitleID),
			Department:  resolveName(departments, e.DepartmentID),
			WorkGroup:   resolveName(workGroups, e.WorkGroupID),
			ProjectType: resolveName(projectTypes, e.ProjectTypeID),
			IsActive:    e.IsActive,
		})
	}
	return &dto.DirectoryResponse{Items: items}, nil
}

// Overview agrupa el directorio resuelto por departamento con sus conteos de
// activos. Los empleados con departamento huérfano quedan bajo "Unknown".
func (uc *EmployeeUseCase) Overview(ctx context.Context) (*dto.StaffOverviewResponse, error) {
	directory, err := uc.Directory(ctx)
	if err != nil {
		return nil, err
	}

	byDepartment := make(map[string][]dto.DirectoryEntry)
	names := make([]string, 0)
	out := &dto.StaffOverviewResponse{}
	for _, e := range directory.Items {
		if _, ok := byDepartment[e.Department]; !ok {
			names = append(names, e.Department)
		}
		byDepartment[e.Department] = append(byDepartment[e.Department], e)
		out.TotalStaff++
		if e.IsActive {
			out.ActiveStaff++
		}
	}
	sort.Strings(names)

	out.Departments = make([]dto.DepartmentStaff, 0, len(names))
	for _, name := range names {
		members := byDepartment[name]
		active := 0
		for _, m := range members {
			if m.IsActive {
				active++
			}
		}
		out.Departments = append(out.Departments, dto.DepartmentStaff{
			Department: name,
			Total:      len(members),
			Active:     active,
			Members:    members,
		})
	}
	return out, nil
}

func lookupIndex(ctx context.Context, uc *LookupUseCase) (map[string]string, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]string, len(list))
	for _, l := range list {
		idx[l.ID] = l.Name
	}
	return idx, nil
}

func resolveName(idx map[string]string, id string) string {
	if name, ok := idx[id]; ok {
		return name
	}
	return UnknownLabel
}

func parseHireDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(hireDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: hire_date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return t, nil
}

func employeeToResponse(e *entity.Employee) *dto.EmployeeResponse {
	hireDate := ""
	if !e.HireDate.IsZero() {
		hireDate = e.HireDate.Format(hireDateLayout)
	}
	return &dto.EmployeeResponse{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		Phone:         e.Phone,
		BadgeNumber:   e.BadgeNumber,
		HireDate:      hireDate,
		JobTitleID:    e.JobTitleID,
		DepartmentID:  e.DepartmentID,
		WorkGroupID:   e.WorkGroupID,
		ProjectTypeID: e.ProjectTypeID,
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
