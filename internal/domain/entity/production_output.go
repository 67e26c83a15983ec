package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionOutput is one ledger entry: a quantity of product produced on a
// date against a plan. ProductCode/ProductName are denormalized copies taken
// at creation and are not re-checked against the plan's product.
//
// Ledger entries have no soft-delete flag; deletion is physical. Deleting a
// plan does not cascade here.
type ProductionOutput struct {
	ID             string
	PlanID         string
	ProductCode    string
	ProductName    string
	Quantity       decimal.Decimal
	ProductionDate time.Time
	OperationCode  string
	CreatedBy      string
	CreatedAt      time.Time
}
