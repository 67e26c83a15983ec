package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openmes/mes-api/internal/domain/entity"
)

// OutputFilter narrows output ledger listings.
type OutputFilter struct {
	PlanID   string
	DateFrom *time.Time
	DateTo   *time.Time
}

// OutputRepository defines the persistence port for the production output
// ledger. Deletes are physical; there is no soft-delete flag on entries.
type OutputRepository interface {
	Create(ctx context.Context, out *entity.ProductionOutput) error
	GetByID(ctx context.Context, id string) (*entity.ProductionOutput, error)
	List(ctx context.Context, filter OutputFilter) ([]*entity.ProductionOutput, error)
	Update(ctx context.Context, out *entity.ProductionOutput) error
	Delete(ctx context.Context, id string) error

	// SumQuantityByPlan returns the full-scan sum of quantities for a plan's
	// entries, zero when there are none. Progress is always recomputed from
	// this sum, never from an incremental counter.
	SumQuantityByPlan(ctx context.Context, planID string) (decimal.Decimal, error)
}
