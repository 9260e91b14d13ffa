// Package failover envuelve un repositorio remoto con su colección local
// sembrada. Las lecturas degradan con gracia: si el backend falla, se sirven
// los datos locales y el error solo se registra — el dashboard nunca muestra
// un fallo duro por una conexión rota. Las escrituras propagan el error al
// llamador: de otro modo su estado optimista divergiría en silencio de la
// verdad no persistida. Esta asimetría es deliberada y vive solo aquí.
package failover

import (
	"context"

	"github.com/smartunion/workforce-api/internal/domain/entity"
	"github.com/smartunion/workforce-api/internal/domain/repository"
	"github.com/smartunion/workforce-api/pkg/logger"
)

var _ repository.LookupRepository = (*LookupFailover)(nil)

// LookupFailover decorador remoto-con-respaldo-local para datos maestros.
type LookupFailover struct {
	collection string
	remote     repository.LookupRepository
	local      repository.LookupRepository
	log        *logger.Logger
}

// NewLookupFailover construye el decorador para una colección.
func NewLookupFailover(collection string, remote, local repository.LookupRepository, log *logger.Logger) *LookupFailover {
	return &LookupFailover{collection: collection, remote: remote, local: local, log: log}
}

// List intenta el backend y cae a los datos locales en error. Nunca propaga
// el fallo remoto de lectura.
func (f *LookupFailover) List(ctx context.Context) ([]*entity.Lookup, error) {
	items, err := f.remote.List(ctx)
	if err != nil {
		f.log.Warn().Err(err).Str("collection", f.collection).
			Msg("lectura remota falló, sirviendo datos locales")
		return f.local.List(ctx)
	}
	return items, nil
}

// Create delega en el backend; los errores de escritura se propagan.
func (f *LookupFailover) Create(ctx context.Context, fields entity.LookupFields) (*entity.Lookup, error) {
	return f.remote.Create(ctx, fields)
}

// Update delega en el backend; los errores de escritura se propagan.
func (f *LookupFailover) Update(ctx context.Context, id string, patch entity.LookupPatch) (*entity.Lookup, error) {
	return f.remote.Update(ctx, id, patch)
}

// Delete delega en el backend; los errores de escritura se propagan.
func (f *LookupFailover) Delete(ctx context.Context, id string) error {
	return f.remote.Delete(ctx, id)
}

var _ repository.EmployeeRepository = (*EmployeeFailover)(nil)

// EmployeeFailover mismo decorador para el directorio de empleados.
type EmployeeFailover struct {
	remote repository.EmployeeRepository
	local  repository.EmployeeRepository
	log    *logger.Logger
}

// NewEmployeeFailover construye el decorador.
func NewEmployeeFailover(remote, local repository.EmployeeRepository, log *logger.Logger) *EmployeeFailover {
	return &EmployeeFailover{remote: remote, local: local, log: log}
}

// List intenta el backend y cae a los datos locales en error.
func (f *EmployeeFailover) List(ctx context.Context) ([]*entity.Employee, error) {
	items, err := f.remote.List(ctx)
	if err != nil {
		f.log.Warn().Err(err).Str("collection", "employees").
			Msg("lectura remota falló, sirviendo datos locales")
		return f.local.List(ctx)
	}
	return items, nil
}

// Create delega en el backend; los errores de escritura se propagan.
func (f *EmployeeFailover) Create(ctx context.Context, fields entity.EmployeeFields) (*entity.Employee, error) {
	return f.remote.Create(ctx, fields)
}

// Update delega en el backend; los errores de escritura se propagan.
func (f *EmployeeFailover) Update(ctx context.Context, id string, patch entity.EmployeePatch) (*entity.Employee, error) {
	return f.remote.Update(ctx, id, patch)
}

// Delete delega en el backend; los errores de escritura se propagan.
func (f *EmployeeFailover) Delete(ctx context.Context, id string) error {
	return f.remote.Delete(ctx, id)
}
