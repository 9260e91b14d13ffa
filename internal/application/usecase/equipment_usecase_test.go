package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartunion/workforce-api/internal/application/dto"
	"github.com/smartunion/workforce-api/internal/application/usecase"
	"github.com/smartunion/workforce-api/internal/domain"
	"github.com/smartunion/workforce-api/internal/domain/entity"
	"github.com/smartunion/workforce-api/internal/infrastructure/memory"
)

func newFleet(t *testing.T) *usecase.EquipmentUseCase {
	t.Helper()
	return usecase.NewEquipmentUseCase(memory.DefaultSeeds().Equipment)
}

func TestAssign_DisponibleAAsignado(t *testing.T) {
	uc := newFleet(t)

	available := uc.List(entity.EquipmentAvailable, "")
	require.NotEmpty(t, available.Items)
	id := available.Items[0].ID

	out, err := uc.Assign(id, "ENG002")
	require.NoError(t, err)
	assert.Equal(t, entity.EquipmentAssigned, out.Status)
	assert.Equal(t, "ENG002", out.AssignedTo)
}

func TestAssign_YaAsignadoEsConflicto(t *testing.T) {
	uc := newFleet(t)

	assigned := uc.List(entity.EquipmentAssigned, "")
	require.NotEmpty(t, assigned.Items)

	_, err := uc.Assign(assigned.Items[0].ID, "ENG002")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// maintenance no es alcanzable ni abandonable vía las transiciones expuestas.
func TestAssign_EnMantenimientoEsConflicto(t *testing.T) {
	uc := newFleet(t)

	maint := uc.List(entity.EquipmentMaintenance, "")
	require.NotEmpty(t, maint.Items)

	_, err := uc.Assign(maint.Items[0].ID, "ENG002")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUnassign_VuelveADisponible(t *testing.T) {
	uc := newFleet(t)

	assigned := uc.List(entity.EquipmentAssigned, "")
	require.NotEmpty(t, assigned.Items)
	id := assigned.Items[0].ID

	out, err := uc.Unassign(id)
	require.NoError(t, err)
	assert.Equal(t, entity.EquipmentAvailable, out.Status)
	assert.Empty(t, out.AssignedTo)

	_, err = uc.Unassign(id)
	assert.ErrorIs(t, err, domain.ErrConflict, "liberar dos veces es conflicto")
}

func TestCreate_EntraComoDisponible(t *testing.T) {
	uc := newFleet(t)

	out, err := uc.Create(dto.CreateEquipmentRequest{Name: "Bosch Grinder", Category: "tool", SerialNumber: "BG-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.EquipmentAvailable, out.Status)
	assert.NotEmpty(t, out.ID)

	_, err = uc.Create(dto.CreateEquipmentRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEquipment_IdInexistente(t *testing.T) {
	uc := newFleet(t)

	_, err := uc.Assign("no-existe", "ENG002")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Unassign("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
