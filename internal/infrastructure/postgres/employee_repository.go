package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/openmes/mes-api/internal/domain"
	"github.com/openmes/mes-api/internal/domain/entity"
	"github.com/openmes/mes-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implements the EmployeeRepository port on PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository builds the persistence adapter for employees.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, employee_code, full_name, email,
		created_by, created_at, updated_by, updated_at, is_deleted`

// Create persists a new employee.
func (r *EmployeeRepo) Create(ctx context.Context, emp *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		emp.ID, emp.EmployeeCode, emp.FullName, emp.Email,
		emp.CreatedBy, emp.CreatedAt, emp.UpdatedBy, emp.UpdatedAt, emp.IsDeleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByCode fetches a live employee by code.
func (r *EmployeeRepo) GetByCode(ctx context.Context, code string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_code = $1 AND is_deleted = FALSE`
	emp, err := scanEmployee(r.q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return emp, nil
}

// List pages live employees, optionally filtered against code, name or email.
func (r *EmployeeRepo) List(ctx context.Context, query string, limit, offset int) ([]*entity.Employee, int, error) {
	where := ` WHERE is_deleted = FALSE`
	args := []any{}
	if query != "" {
		args = append(args, "%"+query+"%")
		where += ` AND (employee_code ILIKE $1 OR full_name ILIKE $1 OR email ILIKE $1)`
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	args = append(args, limit, offset)
	sql := `SELECT ` + employeeColumns + ` FROM employees` + where +
		fmt.Sprintf(` ORDER BY employee_code LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, emp)
	}
	return list, total, rows.Err()
}

// Update overwrites all mutable fields, including the soft-delete flag.
func (r *EmployeeRepo) Update(ctx context.Context, emp *entity.Employee) error {
	query := `
		UPDATE employees SET full_name = $2, email = $3,
			updated_by = $4, updated_at = $5, is_deleted = $6
		WHERE employee_code = $1`
	_, err := r.q.Exec(ctx, query,
		emp.EmployeeCode, emp.FullName, emp.Email,
		emp.UpdatedBy, emp.UpdatedAt, emp.IsDeleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var emp entity.Employee
	var createdBy, updatedBy *string
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email,
		&createdBy, &emp.CreatedAt, &updatedBy, &emp.UpdatedAt, &emp.IsDeleted,
	)
	if err != nil {
		return nil, err
	}
	emp.CreatedBy = deref(createdBy)
	emp.UpdatedBy = deref(updatedBy)
	return &emp, nil
}
