package dto

// EquipmentResponse ítem de la flota.
type EquipmentResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	SerialNumber string `json:"serial_number"`
	Status       string `json:"status"`
	AssignedTo   string `json:"assigned_to,omitempty"`
}

// CreateEquipmentRequest alta de equipo; entra a la flota como available.
type CreateEquipmentRequest struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	SerialNumber string `json:"serial_number"`
}

// AssignEquipmentRequest asignación a un empleado por badge.
type AssignEquipmentRequest struct {
	BadgeNumber string `json:"badge_number"`
}

// EquipmentListResponse listado de la flota.
type EquipmentListResponse struct {
	Items []EquipmentResponse `json:"items"`
}
