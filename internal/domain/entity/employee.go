package entity

import "time"

// Employee registro normalizado del directorio de personal. Las referencias a
// datos maestros son por id; no hay cascada al borrar el lookup referenciado
// (una referencia huérfana se muestra como "Unknown" al resolver nombres).
type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	BadgeNumber   string
	HireDate      time.Time
	JobTitleID    string
	DepartmentID  string
	WorkGroupID   string
	ProjectTypeID string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// FullName nombre para mostrar.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// EmployeeFields campos editables de un Employee (excluye id y timestamps).
type EmployeeFields struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	BadgeNumber   string
	HireDate      time.Time
	JobTitleID    string
	DepartmentID  string
	WorkGroupID   string
	ProjectTypeID string
	IsActive      bool
}

// EmployeePatch actualización parcial: solo los campos no-nil se aplican.
type EmployeePatch struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Phone         *string
	BadgeNumber   *string
	HireDate      *time.Time
	JobTitleID    *string
	DepartmentID  *string
	WorkGroupID   *string
	ProjectTypeID *string
	IsActive      *bool
}
