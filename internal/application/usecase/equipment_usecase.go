package usecase

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/smartunion/workforce-api/internal/application/dto"
	"github.com/smartunion/workforce-api/internal/domain"
	"github.com/smartunion/workforce-api/internal/domain/entity"
)

// EquipmentUseCase flota de equipos con asignación por badge. Estado local al
// proceso: el equipo no se persiste en el backend en este alcance.
//
// Transiciones expuestas: available→assigned (Assign) y assigned→available
// (Unassign). maintenance y damaged no son alcanzables desde ninguna
// operación; solo existen como estado sembrado.
type EquipmentUseCase struct {
	mu    sync.Mutex
	items []*entity.Equipment
}

// NewEquipmentUseCase construye el caso de uso con la flota sembrada.
func NewEquipmentUseCase(seed []*entity.Equipment) *EquipmentUseCase {
	items := make([]*entity.Equipment, len(seed))
	copy(items, seed)
	return &EquipmentUseCase{items: items}
}

// List lista la flota, opcionalmente filtrada por estado y/o categoría.
func (uc *EquipmentUseCase) List(status, category string) *dto.EquipmentListResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	items := make([]dto.EquipmentResponse, 0, len(uc.items))
	for _, e := range uc.items {
		if status != "" && e.Status != status {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		items = append(items, *equipmentToResponse(e))
	}
	return &dto.EquipmentListResponse{Items: items}
}

// Create da de alta un equipo; entra a la flota como available.
func (uc *EquipmentUseCase) Create(in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	e := &entity.Equipment{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Category:     in.Category,
		SerialNumber: in.SerialNumber,
		Status:       entity.EquipmentAvailable,
	}
	uc.items = append([]*entity.Equipment{e}, uc.items...)
	return equipmentToResponse(e), nil
}

// Assign asigna un equipo available al badge indicado.
// domain.ErrConflict si el equipo no está available (incluye maintenance y damaged).
func (uc *EquipmentUseCase) Assign(id, badge string) (*dto.EquipmentResponse, error) {
	if badge == "" {
		return nil, domain.ErrInvalidInput
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	e := uc.find(id)
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if e.Status != entity.EquipmentAvailable {
		return nil, domain.ErrConflict
	}
	e.Status = entity.EquipmentAssigned
	e.AssignedTo = badge
	return equipmentToResponse(e), nil
}

// Unassign libera un equipo assigned de vuelta a available.
// domain.ErrConflict si el equipo no está assigned.
func (uc *EquipmentUseCase) Unassign(id string) (*dto.EquipmentResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	e := uc.find(id)
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if e.Status != entity.EquipmentAssigned {
		return nil, domain.ErrConflict
	}
	e.Status = entity.EquipmentAvailable
	e.AssignedTo = ""
	return equipmentToResponse(e), nil
}

// CountByStatus conteo de la flota por estado, para el dashboard.
func (uc *EquipmentUseCase) CountByStatus() map[string]int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	counts := make(map[string]int)
	for _, e := range uc.items {
		counts[e.Status]++
	}
	return counts
}

func (uc *EquipmentUseCase) find(id string) *entity.Equipment {
	for _, e := range uc.items {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func equipmentToResponse(e *entity.Equipment) *dto.EquipmentResponse {
	return &dto.EquipmentResponse{
		ID:           e.ID,
		Name:         e.Name,
		Category:     e.Category,
		SerialNumber: e.SerialNumber,
		Status:       e.Status,
		AssignedTo:   e.AssignedTo,
	}
}
