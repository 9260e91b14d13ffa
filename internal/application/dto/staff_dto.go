package dto

// DepartmentStaff personal de un departamento con su conteo de activos.
type DepartmentStaff struct {
	Department string           `json:"department"`
	Total      int              `json:"total"`
	Active     int              `json:"active"`
	Members    []DirectoryEntry `json:"members"`
}

// StaffOverviewResponse resumen del personal de oficina agrupado por
// departamento, con los nombres de lookup ya resueltos.
type StaffOverviewResponse struct {
	TotalStaff  int               `json:"total_staff"`
	ActiveStaff int               `json:"active_staff"`
	Departments []DepartmentStaff `json:"departments"`
}
