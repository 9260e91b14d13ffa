package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartunion/workforce-api/internal/domain"
	"github.com/smartunion/workforce-api/internal/domain/entity"
	"github.com/smartunion/workforce-api/internal/domain/repository"
)

var _ repository.LookupRepository = (*LookupRepo)(nil)

// tablas admitidas; el nombre se interpola en el SQL, así que se valida contra
// este conjunto cerrado en el constructor
var lookupTables = map[string]bool{
	entity.CollectionJobTitles:    true,
	entity.CollectionWorkGroups:   true,
	entity.CollectionDepartments:  true,
	entity.CollectionProjectTypes: true,
}

// LookupRepo adaptador de persistencia para una tabla de datos maestros.
// Un mismo tipo sirve las cuatro tablas: comparten forma y contrato.
type LookupRepo struct {
	pool  *pgxpool.Pool
	table string
}

// NewLookupRepository construye el adaptador para la tabla indicada.
// Entra en pánico con una tabla fuera del conjunto admitido: es un error de
// composición, no un estado alcanzable en runtime.
func NewLookupRepository(pool *pgxpool.Pool, table string) *LookupRepo {
	if !lookupTables[table] {
		panic("postgres: tabla de lookup no admitida: " + table)
	}
	return &LookupRepo{pool: pool, table: table}
}

// List devuelve todas las filas ordenadas por name ascendente.
func (r *LookupRepo) List(ctx context.Context) ([]*entity.Lookup, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description, created_at, updated_at
		FROM %s ORDER BY name ASC`, r.table)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	defer rows.Close()

	var list []*entity.Lookup
	for rows.Next() {
		var l entity.Lookup
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Create inserta la fila y devuelve el registro con id y created_at asignados
// por el backend.
func (r *LookupRepo) Create(ctx context.Context, fields entity.LookupFields) (*entity.Lookup, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at, updated_at`, r.table)
	var l entity.Lookup
	err := r.pool.QueryRow(ctx, query, fields.Name, fields.Description).
		Scan(&l.ID, &l.Name, &l.Description, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", r.table, err)
	}
	return &l, nil
}

// Update parcha la fila por id y sella updated_at. domain.ErrNotFound si no existe.
func (r *LookupRepo) Update(ctx context.Context, id string, patch entity.LookupPatch) (*entity.Lookup, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, description, created_at, updated_at`, r.table)
	var l entity.Lookup
	err := r.pool.QueryRow(ctx, query, id, patch.Name, patch.Description).
		Scan(&l.ID, &l.Name, &l.Description, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update %s: %w", r.table, err)
	}
	return &l, nil
}

// Delete elimina la fila por id. domain.ErrNotFound si no existe.
func (r *LookupRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
