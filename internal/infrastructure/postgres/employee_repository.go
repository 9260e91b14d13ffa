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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, first_name, last_name, email, phone, badge_number,
	hire_date, job_title_id, department_id, work_group_id, project_type_id,
	is_active, created_at, updated_at`

// EmployeeRepo adaptador de persistencia para la tabla employees.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.BadgeNumber,
		&e.HireDate, &e.JobTitleID, &e.DepartmentID, &e.WorkGroupID, &e.ProjectTypeID,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List devuelve los empleados por orden de inserción (más recientes primero).
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees ORDER BY created_at DESC`, employeeColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Create inserta la fila y devuelve el registro asignado por el backend.
func (r *EmployeeRepo) Create(ctx context.Context, f entity.EmployeeFields) (*entity.Employee, error) {
	query := fmt.Sprintf(`
		INSERT INTO employees (first_name, last_name, email, phone, badge_number,
			hire_date, job_title_id, department_id, work_group_id, project_type_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s`, employeeColumns)
	e, err := scanEmployee(r.pool.QueryRow(ctx, query,
		f.FirstName, f.LastName, f.Email, f.Phone, f.BadgeNumber,
		f.HireDate, f.JobTitleID, f.DepartmentID, f.WorkGroupID, f.ProjectTypeID, f.IsActive,
	))
	if err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}
	return e, nil
}

// Update parcha la fila por id y sella updated_at. domain.ErrNotFound si no existe.
func (r *EmployeeRepo) Update(ctx context.Context, id string, p entity.EmployeePatch) (*entity.Employee, error) {
	query := fmt.Sprintf(`
		UPDATE employees SET
			first_name      = COALESCE($2, first_name),
			last_name       = COALESCE($3, last_name),
			email           = COALESCE($4, email),
			phone           = COALESCE($5, phone),
			badge_number    = COALESCE($6, badge_number),
			hire_date       = COALESCE($7, hire_date),
			job_title_id    = COALESCE($8, job_title_id),
			department_id   = COALESCE($9, department_id),
			work_group_id   = COALESCE($10, work_group_id),
			project_type_id = COALESCE($11, project_type_id),
			is_active       = COALESCE($12, is_active),
			updated_at      = NOW()
		WHERE id = $1
		RETURNING %s`, employeeColumns)
	e, err := scanEmployee(r.pool.QueryRow(ctx, query, id,
		p.FirstName, p.LastName, p.Email, p.Phone, p.BadgeNumber,
		p.HireDate, p.JobTitleID, p.DepartmentID, p.WorkGroupID, p.ProjectTypeID, p.IsActive,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return e, nil
}

// Delete elimina la fila por id. domain.ErrNotFound si no existe.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
