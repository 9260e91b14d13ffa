package dto

// AttendanceResponse registro diario de asistencia.
type AttendanceResponse struct {
	ID          string  `json:"id"`
	BadgeNumber string  `json:"badge_number"`
	Date        string  `json:"date"`
	CheckIn     string  `json:"check_in,omitempty"`
	CheckOut    string  `json:"check_out,omitempty"`
	HoursWorked float64 `json:"hours_worked"`
	Status      string  `json:"status"`
}

// AttendanceListResponse registros de un día.
type AttendanceListResponse struct {
	Items []AttendanceResponse `json:"items"`
}

// AttendanceSummary agregados del día para el dashboard.
type AttendanceSummary struct {
	Date       string  `json:"date"`
	Present    int     `json:"present"` // incluye llegadas tarde
	Late       int     `json:"late"`
	Absent     int     `json:"absent"`
	TotalHours float64 `json:"total_hours"`
}
