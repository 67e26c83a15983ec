package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/openmes/mes-api/internal/domain/entity"
	"github.com/openmes/mes-api/internal/domain/repository"
)

var _ repository.OutputRepository = (*OutputRepo)(nil)

// OutputRepo implements the OutputRepository port on PostgreSQL.
type OutputRepo struct {
	q Querier
}

// NewOutputRepository builds the persistence adapter for the output ledger.
func NewOutputRepository(q Querier) *OutputRepo {
	return &OutputRepo{q: q}
}

const outputColumns = `id, plan_id, product_code, product_name, quantity,
		production_date, operation_code, created_by, created_at`

// Create persists a new ledger entry.
func (r *OutputRepo) Create(ctx context.Context, out *entity.ProductionOutput) error {
	query := `
		INSERT INTO production_outputs (` + outputColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		out.ID, out.PlanID, out.ProductCode, out.ProductName, out.Quantity,
		out.ProductionDate, nullable(out.OperationCode), out.CreatedBy, out.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert output: %w", err)
	}
	return nil
}

// GetByID fetches a ledger entry by id.
func (r *OutputRepo) GetByID(ctx context.Context, id string) (*entity.ProductionOutput, error) {
	query := `SELECT ` + outputColumns + ` FROM production_outputs WHERE id = $1`
	out, err := scanOutput(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get output: %w", err)
	}
	return out, nil
}

// List fetches ledger entries, newest production date first.
func (r *OutputRepo) List(ctx context.Context, filter repository.OutputFilter) ([]*entity.ProductionOutput, error) {
	sql := `SELECT ` + outputColumns + ` FROM production_outputs WHERE 1=1`
	args := []any{}
	if filter.PlanID != "" {
		args = append(args, filter.PlanID)
		sql += ` AND plan_id = $` + fmt.Sprint(len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		sql += ` AND production_date >= $` + fmt.Sprint(len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		sql += ` AND production_date <= $` + fmt.Sprint(len(args))
	}
	sql += ` ORDER BY production_date DESC`

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list outputs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionOutput
	for rows.Next() {
		out, err := scanOutput(rows)
		if err != nil {
			return nil, fmt.Errorf("scan output: %w", err)
		}
		list = append(list, out)
	}
	return list, rows.Err()
}

// Update overwrites the entry's mutable fields.
func (r *OutputRepo) Update(ctx context.Context, out *entity.ProductionOutput) error {
	query := `
		UPDATE production_outputs SET plan_id = $2, product_code = $3, product_name = $4,
			quantity = $5, production_date = $6, operation_code = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		out.ID, out.PlanID, out.ProductCode, out.ProductName,
		out.Quantity, out.ProductionDate, nullable(out.OperationCode),
	)
	if err != nil {
		return fmt.Errorf("update output: %w", err)
	}
	return nil
}

// Delete removes the entry permanently.
func (r *OutputRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM production_outputs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete output: %w", err)
	}
	return nil
}

// SumQuantityByPlan sums the plan's ledger quantities with a full scan of its
// entries. NUMERIC arrives as decimal via the pool's registered codec, so
// fractional quantities are preserved.
func (r *OutputRepo) SumQuantityByPlan(ctx context.Context, planID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM production_outputs WHERE plan_id = $1`, planID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum outputs: %w", err)
	}
	return sum, nil
}

func scanOutput(row pgx.Row) (*entity.ProductionOutput, error) {
	var out entity.ProductionOutput
	var productName, operationCode, createdBy *string
	err := row.Scan(
		&out.ID, &out.PlanID, &out.ProductCode, &productName, &out.Quantity,
		&out.ProductionDate, &operationCode, &createdBy, &out.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	out.ProductName = deref(productName)
	out.OperationCode = deref(operationCode)
	out.CreatedBy = deref(createdBy)
	return &out, nil
}
