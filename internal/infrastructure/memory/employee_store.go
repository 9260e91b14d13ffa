package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartunion/workforce-api/internal/domain"
	"github.com/smartunion/workforce-api/internal/domain/entity"
	"github.com/smartunion/workforce-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeStore)(nil)

// EmployeeStore colección en memoria del directorio de empleados. A diferencia
// de los lookups, lista por orden de inserción (los creados más recientes primero).
type EmployeeStore struct {
	mu    sync.Mutex
	items []*entity.Employee
	now   func() time.Time
}

// NewEmployeeStore construye la colección con sus registros sembrados.
func NewEmployeeStore(seed []*entity.Employee) *EmployeeStore {
	items := make([]*entity.Employee, len(seed))
	copy(items, seed)
	return &EmployeeStore{items: items, now: time.Now}
}

// List devuelve una copia superficial en orden de inserción.
func (s *EmployeeStore) List(_ context.Context) ([]*entity.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Employee, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Create sintetiza id y created_at y antepone el registro. Nunca falla.
func (s *EmployeeStore) Create(_ context.Context, fields entity.EmployeeFields) (*entity.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e := &entity.Employee{
		ID:            uuid.New().String(),
		FirstName:     fields.FirstName,
		LastName:      fields.LastName,
		Email:         fields.Email,
		Phone:         fields.Phone,
		BadgeNumber:   fields.BadgeNumber,
		HireDate:      fields.HireDate,
		JobTitleID:    fields.JobTitleID,
		DepartmentID:  fields.DepartmentID,
		WorkGroupID:   fields.WorkGroupID,
		ProjectTypeID: fields.ProjectTypeID,
		IsActive:      fields.IsActive,
		CreatedAt:     now,
		UpdatedAt:     &now,
	}
	s.items = append([]*entity.Employee{e}, s.items...)
	return e, nil
}

// Update fusiona los campos no-nil y sella updated_at.
// Devuelve domain.ErrNotFound si el id no existe.
func (s *EmployeeStore) Update(_ context.Context, id string, patch entity.EmployeePatch) (*entity.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.items {
		if e.ID != id {
			continue
		}
		applyEmployeePatch(e, patch)
		now := s.now()
		e.UpdatedAt = &now
		return e, nil
	}
	return nil, domain.ErrNotFound
}

// Delete elimina por id. Devuelve domain.ErrNotFound si el id no existe.
func (s *EmployeeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.items {
		if e.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func applyEmployeePatch(e *entity.Employee, p entity.EmployeePatch) {
	if p.FirstName != nil {
		e.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		e.LastName = *p.LastName
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Phone != nil {
		e.Phone = *p.Phone
	}
	if p.BadgeNumber != nil {
		e.BadgeNumber = *p.BadgeNumber
	}
	if p.HireDate != nil {
		e.HireDate = *p.HireDate
	}
	if p.JobTitleID != nil {
		e.JobTitleID = *p.JobTitleID
	}
	if p.DepartmentID != nil {
		e.DepartmentID = *p.DepartmentID
	}
	if p.WorkGroupID != nil {
		e.WorkGroupID = *p.WorkGroupID
	}
	if p.ProjectTypeID != nil {
		e.ProjectTypeID = *p.ProjectTypeID
	}
	if p.IsActive != nil {
		e.IsActive = *p.IsActive
	}
}
