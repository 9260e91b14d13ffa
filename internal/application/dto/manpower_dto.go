package dto

// ManpowerLogResponse registro diario de despliegue serializado.
type ManpowerLogResponse struct {
	ID              string `json:"id"`
	BadgeNumber     string `json:"badge_number"`
	Date            string `json:"date"`
	Project         string `json:"project"`
	JobTitle        string `json:"job_title"`
	WorkGroup       string `json:"work_group"`
	WorkDescription string `json:"work_description"`
}

// LogManpowerRequest alta o corrección del registro del día de un badge.
// date opcional, por defecto hoy; un registro existente para badge+fecha se
// sobreescribe.
type LogManpowerRequest struct {
	BadgeNumber     string `json:"badge_number"`
	Date            string `json:"date"`
	Project         string `json:"project"`
	JobTitle        string `json:"job_title"`
	WorkGroup       string `json:"work_group"`
	WorkDescription string `json:"work_description"`
}

// ManpowerListResponse registros de un día agrupados por proyecto.
type ManpowerListResponse struct {
	Date     string                           `json:"date"`
	Projects map[string][]ManpowerLogResponse `json:"projects"`
}
