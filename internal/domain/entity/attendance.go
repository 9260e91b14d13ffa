package entity

// Estados de asistencia.
const (
	AttendancePresent = "present"
	AttendanceLate    = "late"
	AttendanceAbsent  = "absent"
	AttendancePartial = "partial"
)

// AttendanceRecord registro diario de asistencia por empleado. CheckIn/CheckOut
// son horas "HH:MM"; HoursWorked es derivado del delta, nunca entrada directa.
// Invariante: CheckOut solo puede fijarse si CheckIn ya está fijado.
type AttendanceRecord struct {
	ID          string
	BadgeNumber string
	Date        string // "2006-01-02"
	CheckIn     string // vacío = sin entrada
	CheckOut    string // vacío = sin salida
	HoursWorked float64
	Status      string
}
