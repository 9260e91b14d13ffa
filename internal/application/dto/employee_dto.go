package dto

import "time"

// EmployeeResponse registro normalizado del directorio.
type EmployeeResponse struct {
	ID            string     `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	BadgeNumber   string     `json:"badge_number,omitempty"`
	HireDate      string     `json:"hire_date"`
	JobTitleID    string     `json:"job_title_id"`
	DepartmentID  string     `json:"department_id"`
	WorkGroupID   string     `json:"work_group_id"`
	ProjectTypeID string     `json:"project_type_id"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// CreateEmployeeRequest alta de empleado; hire_date en formato "2006-01-02".
type CreateEmployeeRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	BadgeNumber   string `json:"badge_number"`
	HireDate      string `json:"hire_date"`
	JobTitleID    string `json:"job_title_id"`
	DepartmentID  string `json:"department_id"`
	WorkGroupID   string `json:"work_group_id"`
	ProjectTypeID string `json:"project_type_id"`
	IsActive      *bool  `json:"is_active"`
}

// UpdateEmployeeRequest parche parcial; los campos omitidos no se tocan.
type UpdateEmployeeRequest struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	BadgeNumber   *string `json:"badge_number"`
	HireDate      *string `json:"hire_date"`
	JobTitleID    *string `json:"job_title_id"`
	DepartmentID  *string `json:"department_id"`
	WorkGroupID   *string `json:"work_group_id"`
	ProjectTypeID *string `json:"project_type_id"`
	IsActive      *bool   `json:"is_active"`
}

// EmployeeListResponse listado del directorio.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
}

// DirectoryEntry fila del directorio con los nombres de lookup resueltos.
// Una referencia huérfana se resuelve a "Unknown".
type DirectoryEntry struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	BadgeNumber string `json:"badge_number,omitempty"`
	JobTitle    string `json:"job_title"`
	Department  string `json:"department"`
	WorkGroup   string `json:"work_group"`
	ProjectType string `json:"project_type"`
	IsActive    bool   `json:"is_active"`
}

// DirectoryResponse directorio resuelto para presentación.
type DirectoryResponse struct {
	Items []DirectoryEntry `json:"items"`
}
