package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrNoCheckIn         = errors.New("no hay registro de entrada para ese día")
	ErrAlreadyCheckedIn  = errors.New("ya existe un registro de entrada")
	ErrAlreadyCheckedOut = errors.New("ya existe un registro de salida")
)
