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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements the ProductRepository port on PostgreSQL (usable with pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the persistence adapter for products.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, product_code, product_name, uom, category, initial_warehouse_code,
		supplier_name, supplier_code, min_stock, qty_per_box,
		created_by, created_at, updated_by, updated_at, is_deleted`

// Create persists a new product.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.ProductCode, p.ProductName, p.UOM, p.Category, p.InitialWarehouseCode,
		p.SupplierName, p.SupplierCode, p.MinStock, p.QtyPerBox,
		p.CreatedBy, p.CreatedAt, p.UpdatedBy, p.UpdatedAt, p.IsDeleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByCode fetches a live product by code; soft-deleted rows do not resolve.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_code = $1 AND is_deleted = FALSE`
	row := r.q.QueryRow(ctx, query, code)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Search lists live products matching the query against code, name or supplier
// code (case-insensitive substring), optionally narrowed by category.
func (r *ProductRepo) Search(ctx context.Context, query, category string, limit int) ([]*entity.Product, error) {
	sql := `SELECT ` + productColumns + ` FROM products WHERE is_deleted = FALSE`
	args := []any{}
	if query != "" {
		args = append(args, "%"+query+"%")
		n := fmt.Sprint(len(args))
		sql += ` AND (product_code ILIKE $` + n + ` OR product_name ILIKE $` + n + ` OR supplier_code ILIKE $` + n + `)`
	}
	if category != "" {
		args = append(args, category)
		sql += ` AND category = $` + fmt.Sprint(len(args))
	}
	args = append(args, limit)
	sql += ` ORDER BY product_code LIMIT $` + fmt.Sprint(len(args))

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update overwrites all mutable fields, including the soft-delete flag.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET product_name = $2, uom = $3, category = $4, initial_warehouse_code = $5,
			supplier_name = $6, supplier_code = $7, min_stock = $8, qty_per_box = $9,
			updated_by = $10, updated_at = $11, is_deleted = $12
		WHERE product_code = $1`
	_, err := r.q.Exec(ctx, query,
		p.ProductCode, p.ProductName, p.UOM, p.Category, p.InitialWarehouseCode,
		p.SupplierName, p.SupplierCode, p.MinStock, p.QtyPerBox,
		p.UpdatedBy, p.UpdatedAt, p.IsDeleted,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var uom, warehouse, supplierName, supplierCode, createdBy, updatedBy *string
	err := row.Scan(
		&p.ID, &p.ProductCode, &p.ProductName, &uom, &p.Category, &warehouse,
		&supplierName, &supplierCode, &p.MinStock, &p.QtyPerBox,
		&createdBy, &p.CreatedAt, &updatedBy, &p.UpdatedAt, &p.IsDeleted,
	)
	if err != nil {
		return nil, err
	}
	p.UOM = deref(uom)
	p.InitialWarehouseCode = deref(warehouse)
	p.SupplierName = deref(supplierName)
	p.SupplierCode = deref(supplierCode)
	p.CreatedBy = deref(createdBy)
	p.UpdatedBy = deref(updatedBy)
	return &p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
