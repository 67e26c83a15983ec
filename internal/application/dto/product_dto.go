package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input for creating a product master record.
type CreateProductRequest struct {
	ProductCode          string          `json:"product_code" validate:"required,min=1,max=100"`
	ProductName          string          `json:"product_name" validate:"required,min=1,max=200"`
	UOM                  string          `json:"uom"`
	Category             string          `json:"category" validate:"required,oneof=NVL BTP TP"`
	InitialWarehouseCode string          `json:"initial_warehouse_code"`
	SupplierName         string          `json:"supplier_name"`
	SupplierCode         string          `json:"supplier_code"`
	MinStock             decimal.Decimal `json:"min_stock"`
	QtyPerBox            decimal.Decimal `json:"qty_per_box"`
}

// UpdateProductRequest input for updating a product (code is immutable).
type UpdateProductRequest struct {
	ProductName          *string          `json:"product_name"`
	UOM                  *string          `json:"uom"`
	Category             *string          `json:"category"`
	InitialWarehouseCode *string          `json:"initial_warehouse_code"`
	SupplierName         *string          `json:"supplier_name"`
	SupplierCode         *string          `json:"supplier_code"`
	MinStock             *decimal.Decimal `json:"min_stock"`
	QtyPerBox            *decimal.Decimal `json:"qty_per_box"`
}

// ProductResponse product output.
type ProductResponse struct {
	ID                   string          `json:"id"`
	ProductCode          string          `json:"product_code"`
	ProductName          string          `json:"product_name"`
	UOM                  string          `json:"uom,omitempty"`
	Category             string          `json:"category"`
	InitialWarehouseCode string          `json:"initial_warehouse_code,omitempty"`
	SupplierName         string          `json:"supplier_name,omitempty"`
	SupplierCode         string          `json:"supplier_code,omitempty"`
	MinStock             decimal.Decimal `json:"min_stock"`
	QtyPerBox            decimal.Decimal `json:"qty_per_box"`
	CreatedBy            string          `json:"created_by,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedBy            string          `json:"updated_by,omitempty"`
	UpdatedAt            *time.Time      `json:"updated_at,omitempty"`
}

// ProductListResponse search results (capped, not paginated).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
