package repository

import (
	"context"

	"github.com/smartunion/workforce-api/internal/domain/entity"
)

// LookupRepository puerto de persistencia uniforme para las colecciones de
// datos maestros (job_titles, work_groups, departments, project_types).
//
// Contrato:
//   - List devuelve la colección ordenada por name ascendente.
//   - Create recibe los campos sin id ni timestamps y devuelve el registro
//     completo (id y created_at asignados por el backend o sintetizados).
//   - Update/Delete sobre un id inexistente devuelven domain.ErrNotFound.
type LookupRepository interface {
	List(ctx context.Context) ([]*entity.Lookup, error)
	Create(ctx context.Context, fields entity.LookupFields) (*entity.Lookup, error)
	Update(ctx context.Context, id string, patch entity.LookupPatch) (*entity.Lookup, error)
	Delete(ctx context.Context, id string) error
}
