package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartunion/workforce-api/internal/domain"
	"github.com/smartunion/workforce-api/internal/domain/entity"
	"github.com/smartunion/workforce-api/internal/infrastructure/memory"
)

func ptr(s string) *string { return &s }

// create + getAll: el registro aparece con id y created_at sintetizados,
// exactamente una vez.
func TestLookupStore_CreateYListar(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLookupStore(entity.CollectionJobTitles, memory.DefaultSeeds().JobTitles)

	created, err := store.Create(ctx, entity.LookupFields{Name: "Welder", Description: "Soldadura estructural"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	items, err := store.List(ctx)
	require.NoError(t, err)

	count := 0
	for _, l := range items {
		if l.Name == "Welder" {
			count++
		}
	}
	assert.Equal(t, 1, count, "el nombre creado debe aparecer exactamente una vez")
}

// List ordena por name ascendente, insensible a mayúsculas, y devuelve copia.
func TestLookupStore_OrdenPorNombre(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLookupStore(entity.CollectionDepartments, nil)

	for _, name := range []string{"operations", "Accounting", "Engineering"} {
		_, err := store.Create(ctx, entity.LookupFields{Name: name})
		require.NoError(t, err)
	}

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Accounting", items[0].Name)
	assert.Equal(t, "Engineering", items[1].Name)
	assert.Equal(t, "operations", items[2].Name)

	// Mutar la copia no afecta al estado interno
	items[0] = nil
	again, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Accounting", again[0].Name)
}

// delete(id) + getAll excluye ese id; borrar un id inexistente es error explícito.
func TestLookupStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLookupStore(entity.CollectionWorkGroups, memory.DefaultSeeds().WorkGroups)

	before, err := store.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, before)

	victim := before[0].ID
	require.NoError(t, store.Delete(ctx, victim))

	after, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)-1)
	for _, l := range after {
		assert.NotEqual(t, victim, l.ID)
	}

	assert.ErrorIs(t, store.Delete(ctx, "no-existe"), domain.ErrNotFound)
}

// update sobre id inexistente falla explícitamente y no cambia el tamaño.
func TestLookupStore_UpdateIdInexistente(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLookupStore(entity.CollectionProjectTypes, memory.DefaultSeeds().ProjectTypes)

	before, err := store.List(ctx)
	require.NoError(t, err)

	_, err = store.Update(ctx, "no-existe", entity.LookupPatch{Name: ptr("X")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	after, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before), "un update fallido no debe alterar la colección")
}

// update parcial: solo los campos no-nil se fusionan y updated_at se sella.
func TestLookupStore_UpdateParcial(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLookupStore(entity.CollectionJobTitles, nil)

	created, err := store.Create(ctx, entity.LookupFields{Name: "Foreman", Description: "Capataz de obra"})
	require.NoError(t, err)

	updated, err := store.Update(ctx, created.ID, entity.LookupPatch{Description: ptr("Capataz de cuadrilla")})
	require.NoError(t, err)
	assert.Equal(t, "Foreman", updated.Name, "el campo no parchado se conserva")
	assert.Equal(t, "Capataz de cuadrilla", updated.Description)
	require.NotNil(t, updated.UpdatedAt)
}
