package repository

import (
	"context"

	"github.com/smartunion/workforce-api/internal/domain/entity"
)

// EmployeeRepository puerto de persistencia para Employee. Mismo contrato que
// LookupRepository salvo el orden de List: Employee no tiene un campo name
// único, así que se lista por orden de inserción (created_at descendente).
type EmployeeRepository interface {
	List(ctx context.Context) ([]*entity.Employee, error)
	Create(ctx context.Context, fields entity.EmployeeFields) (*entity.Employee, error)
	Update(ctx context.Context, id string, patch entity.EmployeePatch) (*entity.Employee, error)
	Delete(ctx context.Context, id string) error
}
