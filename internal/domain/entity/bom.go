package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOM represents one bill-of-materials row: a component that goes into a parent
// product, optionally tied to an operation, valid over an effectivity window.
// Rows are stored as master data only; nothing derives consumption from them.
type BOM struct {
	ID                   string
	ParentProductCode    string
	ComponentProductCode string
	QuantityPer          decimal.Decimal
	OperationCode        string
	ScrapRate            decimal.Decimal // percent
	EffectiveFrom        time.Time
	EffectiveTo          *time.Time // nil = open-ended
	CreatedBy            string
	CreatedAt            time.Time
	UpdatedBy            string
	UpdatedAt            *time.Time
	IsDeleted            bool
}
