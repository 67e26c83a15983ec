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

var _ repository.OperationRepository = (*OperationRepo)(nil)

// OperationRepo implements the OperationRepository port on PostgreSQL.
type OperationRepo struct {
	q Querier
}

// NewOperationRepository builds the persistence adapter for operations.
func NewOperationRepository(q Querier) *OperationRepo {
	return &OperationRepo{q: q}
}

const operationColumns = `id, operation_code, operation_name, cycle_time_seconds,
		created_by, created_at, updated_by, updated_at, is_deleted`

// Create persists a new operation.
func (r *OperationRepo) Create(ctx context.Context, op *entity.Operation) error {
	query := `
		INSERT INTO operations (` + operationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		op.ID, op.OperationCode, op.OperationName, op.CycleTimeSeconds,
		op.CreatedBy, op.CreatedAt, op.UpdatedBy, op.UpdatedAt, op.IsDeleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// GetByCode fetches a live operation by code.
func (r *OperationRepo) GetByCode(ctx context.Context, code string) (*entity.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations WHERE operation_code = $1 AND is_deleted = FALSE`
	op, err := scanOperation(r.q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operation: %w", err)
	}
	return op, nil
}

// List pages live operations, optionally filtered by a case-insensitive
// substring against code or name. Returns items plus total count for the filter.
func (r *OperationRepo) List(ctx context.Context, query string, limit, offset int) ([]*entity.Operation, int, error) {
	where := ` WHERE is_deleted = FALSE`
	args := []any{}
	if query != "" {
		args = append(args, "%"+query+"%")
		where += ` AND (operation_code ILIKE $1 OR operation_name ILIKE $1)`
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM operations`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count operations: %w", err)
	}

	args = append(args, limit, offset)
	sql := `SELECT ` + operationColumns + ` FROM operations` + where +
		fmt.Sprintf(` ORDER BY operation_code LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list operations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan operation: %w", err)
		}
		list = append(list, op)
	}
	return list, total, rows.Err()
}

// Update overwrites all mutable fields, including the soft-delete flag.
func (r *OperationRepo) Update(ctx context.Context, op *entity.Operation) error {
	query := `
		UPDATE operations SET operation_name = $2, cycle_time_seconds = $3,
			updated_by = $4, updated_at = $5, is_deleted = $6
		WHERE operation_code = $1`
	_, err := r.q.Exec(ctx, query,
		op.OperationCode, op.OperationName, op.CycleTimeSeconds,
		op.UpdatedBy, op.UpdatedAt, op.IsDeleted,
	)
	if err != nil {
		return fmt.Errorf("update operation: %w", err)
	}
	return nil
}

func scanOperation(row pgx.Row) (*entity.Operation, error) {
	var op entity.Operation
	var createdBy, updatedBy *string
	err := row.Scan(
		&op.ID, &op.OperationCode, &op.OperationName, &op.CycleTimeSeconds,
		&createdBy, &op.CreatedAt, &updatedBy, &op.UpdatedAt, &op.IsDeleted,
	)
	if err != nil {
		return nil, err
	}
	op.CreatedBy = deref(createdBy)
	op.UpdatedBy = deref(updatedBy)
	return &op, nil
}
