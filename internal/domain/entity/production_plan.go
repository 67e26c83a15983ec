package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionPlan is a target to produce PlanQty of a product by ShipDate.
// (ProductCode, ShipDate) is unique among non-deleted plans.
//
// Started and IsCompleted are independent booleans. IsCompleted is derived from
// the output ledger after every ledger mutation, but can also be forced true by
// the manual complete transition; a later ledger edit recomputes it again and
// may flip it back (there is no flag distinguishing a manual completion).
type ProductionPlan struct {
	ID          string
	ProductCode string
	ShipDate    time.Time
	PlanQty     decimal.Decimal
	Started     bool
	IsCompleted bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedBy   string
	UpdatedAt   *time.Time
	DeletedBy   string
	DeletedAt   *time.Time
	IsDeleted   bool
}

// ProgressSnapshot is the aggregated state of a plan at a point in time.
// ProducedQty is always a fresh full-scan sum over the plan's ledger entries,
// never a cached counter. RemainingQty is floored at zero.
type ProgressSnapshot struct {
	PlanID       string
	PlanQty      decimal.Decimal
	ProducedQty  decimal.Decimal
	RemainingQty decimal.Decimal
	Started      bool
	IsCompleted  bool
}
