package entity

import "time"

// Colecciones de datos maestros. Coinciden con las tablas del backend remoto.
const (
	CollectionJobTitles    = "job_titles"
	CollectionWorkGroups   = "work_groups"
	CollectionDepartments  = "departments"
	CollectionProjectTypes = "project_types"
)

// Lookup es la forma uniforme de las entidades de referencia (JobTitle,
// WorkGroup, Department, ProjectType). El id es la única clave de join estable;
// el name se muestra pero no tiene garantía de unicidad en esta capa.
type Lookup struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// LookupFields campos editables de un Lookup (excluye id y timestamps).
type LookupFields struct {
	Name        string
	Description string
}

// LookupPatch actualización parcial: solo los campos no-nil se aplican.
type LookupPatch struct {
	Name        *string
	Description *string
}
