package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product categories: raw material, semi-finished, finished.
const (
	CategoryRawMaterial  = "NVL"
	CategorySemiFinished = "BTP"
	CategoryFinished     = "TP"
)

// Product represents a material or article master record, keyed by product code.
// Soft-deleted rows stay in the table with IsDeleted set; lookups filter them out.
type Product struct {
	ID                   string
	ProductCode          string
	ProductName          string
	UOM                  string
	Category             string // NVL | BTP | TP
	InitialWarehouseCode string
	SupplierName         string
	SupplierCode         string
	MinStock             decimal.Decimal
	QtyPerBox            decimal.Decimal
	CreatedBy            string
	CreatedAt            time.Time
	UpdatedBy            string
	UpdatedAt            *time.Time
	IsDeleted            bool
}
