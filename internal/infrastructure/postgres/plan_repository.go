package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/openmes/mes-api/internal/domain"
	"github.com/openmes/mes-api/internal/domain/entity"
	"github.com/openmes/mes-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implements the PlanRepository port on PostgreSQL.
type PlanRepo struct {
	q Querier
}

// NewPlanRepository builds the persistence adapter for production plans.
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

const planColumns = `id, product_code, ship_date, plan_qty, started, is_completed,
		created_by, created_at, updated_by, updated_at, deleted_by, deleted_at, is_deleted`

// Create persists a new plan. A live plan already holding the same
// (product_code, ship_date) slot surfaces as ErrDuplicate.
func (r *PlanRepo) Create(ctx context.Context, plan *entity.ProductionPlan) error {
	query := `
		INSERT INTO production_plans (` + planColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		plan.ID, plan.ProductCode, plan.ShipDate, plan.PlanQty, plan.Started, plan.IsCompleted,
		plan.CreatedBy, plan.CreatedAt, plan.UpdatedBy, plan.UpdatedAt,
		plan.DeletedBy, plan.DeletedAt, plan.IsDeleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

// GetByID fetches a plan by id, soft-deleted ones included.
func (r *PlanRepo) GetByID(ctx context.Context, id string) (*entity.ProductionPlan, error) {
	query := `SELECT ` + planColumns + ` FROM production_plans WHERE id = $1`
	plan, err := scanPlan(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return plan, nil
}

// List pages live plans with the requested filters, returning the total count
// for the filter alongside the page.
func (r *PlanRepo) List(ctx context.Context, filter repository.PlanFilter) ([]*entity.ProductionPlan, int, error) {
	where := ` WHERE is_deleted = FALSE`
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Date != nil {
		day := filter.Date.Truncate(24 * time.Hour)
		where += ` AND ship_date >= ` + arg(day) + ` AND ship_date < ` + arg(day.AddDate(0, 0, 1))
	} else {
		if filter.DateFrom != nil {
			where += ` AND ship_date >= ` + arg(*filter.DateFrom)
		}
		if filter.DateTo != nil {
			// inclusive of the end date
			where += ` AND ship_date < ` + arg(filter.DateTo.AddDate(0, 0, 1))
		}
	}
	if filter.ProductCode != "" {
		where += ` AND product_code = ` + arg(filter.ProductCode)
	}
	switch filter.Status {
	case repository.PlanStatusStarted:
		where += ` AND started = TRUE`
	case repository.PlanStatusNotStarted:
		where += ` AND started = FALSE`
	case repository.PlanStatusCompleted:
		where += ` AND is_completed = TRUE`
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM production_plans`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count plans: %w", err)
	}

	sql := `SELECT ` + planColumns + ` FROM production_plans` + where +
		` ORDER BY ship_date, product_code LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg(filter.Offset)
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, plan)
	}
	return list, total, rows.Err()
}

// Update overwrites the plan's editable fields.
func (r *PlanRepo) Update(ctx context.Context, plan *entity.ProductionPlan) error {
	query := `
		UPDATE production_plans SET product_code = $2, ship_date = $3, plan_qty = $4,
			started = $5, is_completed = $6, updated_by = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		plan.ID, plan.ProductCode, plan.ShipDate, plan.PlanQty,
		plan.Started, plan.IsCompleted, plan.UpdatedBy, plan.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update plan: %w", err)
	}
	return nil
}

// SetStarted marks the plan started. No precondition on the current state:
// repeating the call is a no-op beyond the audit columns.
func (r *PlanRepo) SetStarted(ctx context.Context, id, updatedBy string) (*entity.ProductionPlan, error) {
	query := `
		UPDATE production_plans SET started = TRUE, updated_by = $2, updated_at = now()
		WHERE id = $1 AND is_deleted = FALSE
		RETURNING ` + planColumns
	plan, err := scanPlan(r.q.QueryRow(ctx, query, id, updatedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("start plan: %w", err)
	}
	return plan, nil
}

// ForceComplete sets is_completed unconditionally (manual transition).
func (r *PlanRepo) ForceComplete(ctx context.Context, id, updatedBy string) (*entity.ProductionPlan, error) {
	query := `
		UPDATE production_plans SET is_completed = TRUE, updated_by = $2, updated_at = now()
		WHERE id = $1 AND is_deleted = FALSE
		RETURNING ` + planColumns
	plan, err := scanPlan(r.q.QueryRow(ctx, query, id, updatedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("complete plan: %w", err)
	}
	return plan, nil
}

// SetCompleted writes only the derived completion flag (recomputation path).
func (r *PlanRepo) SetCompleted(ctx context.Context, id string, completed bool) error {
	_, err := r.q.Exec(ctx,
		`UPDATE production_plans SET is_completed = $2 WHERE id = $1`, id, completed,
	)
	if err != nil {
		return fmt.Errorf("set plan completion: %w", err)
	}
	return nil
}

// SoftDelete flags the plan deleted; the row (and its ledger) stays in place.
func (r *PlanRepo) SoftDelete(ctx context.Context, id, deletedBy string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE production_plans SET is_deleted = TRUE, deleted_by = $2, deleted_at = now() WHERE id = $1 AND is_deleted = FALSE`,
		id, deletedBy,
	)
	if err != nil {
		return false, fmt.Errorf("soft delete plan: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanPlan(row pgx.Row) (*entity.ProductionPlan, error) {
	var plan entity.ProductionPlan
	var createdBy, updatedBy, deletedBy *string
	err := row.Scan(
		&plan.ID, &plan.ProductCode, &plan.ShipDate, &plan.PlanQty, &plan.Started, &plan.IsCompleted,
		&createdBy, &plan.CreatedAt, &updatedBy, &plan.UpdatedAt,
		&deletedBy, &plan.DeletedAt, &plan.IsDeleted,
	)
	if err != nil {
		return nil, err
	}
	plan.CreatedBy = deref(createdBy)
	plan.UpdatedBy = deref(updatedBy)
	plan.DeletedBy = deref(deletedBy)
	return &plan, nil
}
