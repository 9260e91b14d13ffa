// Package memory implementa el modo local del componente de persistencia:
// colecciones mutables en proceso, sembradas con registros representativos,
// con el mismo contrato externo que los repositorios remotos. Es el fallback
// de desarrollo/demo, no una garantía de durabilidad: los ids se generan por
// proceso y no sobreviven reinicios.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/smartunion/workforce-api/internal/domain"
	"github.com/smartunion/workforce-api/internal/domain/entity"
	"github.com/smartunion/workforce-api/internal/domain/repository"
)

var _ repository.LookupRepository = (*LookupStore)(nil)

// LookupStore colección en memoria de una entidad de datos maestros.
type LookupStore struct {
	mu         sync.Mutex
	collection string
	items      []*entity.Lookup
	coll       *collate.Collator
	now        func() time.Time
}

// NewLookupStore construye la colección con sus registros sembrados.
func NewLookupStore(collection string, seed []*entity.Lookup) *LookupStore {
	items := make([]*entity.Lookup, len(seed))
	copy(items, seed)
	return &LookupStore{
		collection: collection,
		items:      items,
		// Orden por name como lo haría el backend: insensible a mayúsculas
		coll: collate.New(language.Und, collate.IgnoreCase),
		now:  time.Now,
	}
}

// List devuelve una copia superficial ordenada por name ascendente.
func (s *LookupStore) List(_ context.Context) ([]*entity.Lookup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Lookup, len(s.items))
	copy(out, s.items)
	s.coll.Sort(lookupsByName(out))
	return out, nil
}

// Create sintetiza id y created_at y antepone el registro. Nunca falla.
func (s *LookupStore) Create(_ context.Context, fields entity.LookupFields) (*entity.Lookup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	l := &entity.Lookup{
		ID:          uuid.New().String(),
		Name:        fields.Name,
		Description: fields.Description,
		CreatedAt:   now,
		UpdatedAt:   &now,
	}
	s.items = append([]*entity.Lookup{l}, s.items...)
	return l, nil
}

// Update fusiona los campos no-nil y sella updated_at.
// Devuelve domain.ErrNotFound si el id no existe.
func (s *LookupStore) Update(_ context.Context, id string, patch entity.LookupPatch) (*entity.Lookup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.items {
		if l.ID != id {
			continue
		}
		if patch.Name != nil {
			l.Name = *patch.Name
		}
		if patch.Description != nil {
			l.Description = *patch.Description
		}
		now := s.now()
		l.UpdatedAt = &now
		return l, nil
	}
	return nil, domain.ErrNotFound
}

// Delete elimina por id. Devuelve domain.ErrNotFound si el id no existe.
func (s *LookupStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.items {
		if l.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// lookupsByName adapta []*entity.Lookup a la interfaz de ordenación del collator.
type lookupsByName []*entity.Lookup

func (l lookupsByName) Len() int           { return len(l) }
func (l lookupsByName) Swap(i, j int)      { l[i], l[j] = l[j], l[i] }
func (l lookupsByName) Bytes(i int) []byte { return []byte(l[i].Name) }
