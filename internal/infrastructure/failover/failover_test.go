package failover_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartunion/workforce-api/internal/domain/entity"
	"github.com/smartunion/workforce-api/internal/infrastructure/failover"
	"github.com/smartunion/workforce-api/internal/infrastructure/memory"
	"github.com/smartunion/workforce-api/pkg/logger"
)

var errConexion = errors.New("dial tcp: connection refused")

// remoto que falla en todo: simula un backend configurado pero caído
type lookupRemotoCaido struct{}

func (r *lookupRemotoCaido) List(context.Context) ([]*entity.Lookup, error) {
	return nil, errConexion
}
func (r *lookupRemotoCaido) Create(context.Context, entity.LookupFields) (*entity.Lookup, error) {
	return nil, errConexion
}
func (r *lookupRemotoCaido) Update(context.Context, string, entity.LookupPatch) (*entity.Lookup, error) {
	return nil, errConexion
}
func (r *lookupRemotoCaido) Delete(context.Context, string) error {
	return errConexion
}

// Lectura contra backend caído → datos locales sembrados, sin error.
func TestLookupFailover_LecturaDegradaALocal(t *testing.T) {
	seeds := memory.DefaultSeeds()
	local := memory.NewLookupStore(entity.CollectionJobTitles, seeds.JobTitles)
	f := failover.NewLookupFailover(entity.CollectionJobTitles, &lookupRemotoCaido{}, local, logger.Nop())

	items, err := f.List(context.Background())
	require.NoError(t, err, "el fallo remoto de lectura nunca llega al llamador")
	assert.Len(t, items, len(seeds.JobTitles))
}

// Escrituras contra backend caído → el error se propaga tal cual.
func TestLookupFailover_EscriturasPropaganElError(t *testing.T) {
	local := memory.NewLookupStore(entity.CollectionJobTitles, nil)
	f := failover.NewLookupFailover(entity.CollectionJobTitles, &lookupRemotoCaido{}, local, logger.Nop())
	ctx := context.Background()

	_, err := f.Create(ctx, entity.LookupFields{Name: "Welder"})
	assert.ErrorIs(t, err, errConexion)

	name := "X"
	_, err = f.Update(ctx, "id", entity.LookupPatch{Name: &name})
	assert.ErrorIs(t, err, errConexion)

	assert.ErrorIs(t, f.Delete(ctx, "id"), errConexion)

	// y la colección local de respaldo queda intacta
	items, err := local.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "las escrituras fallidas no deben tocar el respaldo local")
}

type employeeRemotoCaido struct{}

func (r *employeeRemotoCaido) List(context.Context) ([]*entity.Employee, error) {
	return nil, errConexion
}
func (r *employeeRemotoCaido) Create(context.Context, entity.EmployeeFields) (*entity.Employee, error) {
	return nil, errConexion
}
func (r *employeeRemotoCaido) Update(context.Context, string, entity.EmployeePatch) (*entity.Employee, error) {
	return nil, errConexion
}
func (r *employeeRemotoCaido) Delete(context.Context, string) error {
	return errConexion
}

func TestEmployeeFailover_MismaAsimetria(t *testing.T) {
	seeds := memory.DefaultSeeds()
	local := memory.NewEmployeeStore(seeds.Employees)
	f := failover.NewEmployeeFailover(&employeeRemotoCaido{}, local, logger.Nop())
	ctx := context.Background()

	items, err := f.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, len(seeds.Employees))

	_, err = f.Create(ctx, entity.EmployeeFields{FirstName: "X"})
	assert.ErrorIs(t, err, errConexion)
}
