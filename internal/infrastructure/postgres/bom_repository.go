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

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo implements the BOMRepository port on PostgreSQL.
type BOMRepo struct {
	q Querier
}

// NewBOMRepository builds the persistence adapter for BOM rows.
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

const bomColumns = `id, parent_product_code, component_product_code, quantity_per, operation_code,
		scrap_rate, effective_from, effective_to,
		created_by, created_at, updated_by, updated_at, is_deleted`

// Create persists a new BOM row.
func (r *BOMRepo) Create(ctx context.Context, bom *entity.BOM) error {
	query := `
		INSERT INTO boms (` + bomColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		bom.ID, bom.ParentProductCode, bom.ComponentProductCode, bom.QuantityPer, nullable(bom.OperationCode),
		bom.ScrapRate, bom.EffectiveFrom, bom.EffectiveTo,
		bom.CreatedBy, bom.CreatedAt, bom.UpdatedBy, bom.UpdatedAt, bom.IsDeleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bom: %w", err)
	}
	return nil
}

// GetByID fetches a live BOM row by id.
func (r *BOMRepo) GetByID(ctx context.Context, id string) (*entity.BOM, error) {
	query := `SELECT ` + bomColumns + ` FROM boms WHERE id = $1 AND is_deleted = FALSE`
	bom, err := scanBOM(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bom: %w", err)
	}
	return bom, nil
}

// List fetches live BOM rows, optionally for one parent product and optionally
// only those whose effectivity window covers a date.
func (r *BOMRepo) List(ctx context.Context, filter repository.BOMFilter) ([]*entity.BOM, error) {
	sql := `SELECT ` + bomColumns + ` FROM boms WHERE is_deleted = FALSE`
	args := []any{}
	if filter.Parent != "" {
		args = append(args, filter.Parent)
		sql += ` AND parent_product_code = $` + fmt.Sprint(len(args))
	}
	if filter.EffectiveOn != nil {
		args = append(args, *filter.EffectiveOn)
		n := fmt.Sprint(len(args))
		sql += ` AND effective_from <= $` + n + ` AND (effective_to IS NULL OR effective_to >= $` + n + `)`
	}
	sql += ` ORDER BY parent_product_code, component_product_code`

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list boms: %w", err)
	}
	defer rows.Close()
	var list []*entity.BOM
	for rows.Next() {
		bom, err := scanBOM(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bom: %w", err)
		}
		list = append(list, bom)
	}
	return list, rows.Err()
}

// Update overwrites all mutable fields, including the soft-delete flag.
func (r *BOMRepo) Update(ctx context.Context, bom *entity.BOM) error {
	query := `
		UPDATE boms SET parent_product_code = $2, component_product_code = $3, quantity_per = $4,
			operation_code = $5, scrap_rate = $6, effective_from = $7, effective_to = $8,
			updated_by = $9, updated_at = $10, is_deleted = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		bom.ID, bom.ParentProductCode, bom.ComponentProductCode, bom.QuantityPer,
		nullable(bom.OperationCode), bom.ScrapRate, bom.EffectiveFrom, bom.EffectiveTo,
		bom.UpdatedBy, bom.UpdatedAt, bom.IsDeleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update bom: %w", err)
	}
	return nil
}

func scanBOM(row pgx.Row) (*entity.BOM, error) {
	var bom entity.BOM
	var operationCode, createdBy, updatedBy *string
	err := row.Scan(
		&bom.ID, &bom.ParentProductCode, &bom.ComponentProductCode, &bom.QuantityPer, &operationCode,
		&bom.ScrapRate, &bom.EffectiveFrom, &bom.EffectiveTo,
		&createdBy, &bom.CreatedAt, &updatedBy, &bom.UpdatedAt, &bom.IsDeleted,
	)
	if err != nil {
		return nil, err
	}
	bom.OperationCode = deref(operationCode)
	bom.CreatedBy = deref(createdBy)
	bom.UpdatedBy = deref(updatedBy)
	return &bom, nil
}

// nullable maps "" to NULL for optional code columns.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
