package entity

// Estados de equipo. available ↔ assigned son los únicos alcanzables vía las
// transiciones expuestas; maintenance y damaged solo existen como estado
// inicial de la flota sembrada.
const (
	EquipmentAvailable   = "available"
	EquipmentAssigned    = "assigned"
	EquipmentMaintenance = "maintenance"
	EquipmentDamaged     = "damaged"
)

// Equipment ítem de la flota de equipos. AssignedTo es el badge del empleado,
// vacío cuando el equipo no está asignado.
type Equipment struct {
	ID           string
	Name         string
	Category     string
	SerialNumber string
	Status       string
	AssignedTo   string
}
