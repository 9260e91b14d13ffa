package dto

import "time"

// LookupResponse entidad de datos maestros serializada.
type LookupResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// CreateLookupRequest alta de un dato maestro.
type CreateLookupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateLookupRequest parche parcial; los campos omitidos no se tocan.
type UpdateLookupRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// LookupListResponse listado de una colección de datos maestros.
type LookupListResponse struct {
	Items []LookupResponse `json:"items"`
}
