package repository

import (
	"context"
	"time"

	"github.com/openmes/mes-api/internal/domain/entity"
)

// Plan status filters.
const (
	PlanStatusStarted    = "started"
	PlanStatusNotStarted = "not_started"
	PlanStatusCompleted  = "completed"
)

// PlanFilter narrows plan listings. Date is an exact-day filter kept for
// backward compatibility with the DateFrom/DateTo range (DateTo inclusive).
type PlanFilter struct {
	Date        *time.Time
	DateFrom    *time.Time
	DateTo      *time.Time
	ProductCode string
	Status      string // started | not_started | completed
	Limit       int
	Offset      int
}

// PlanRepository defines the persistence port for production plans.
//
// GetByID intentionally returns soft-deleted plans too: callers that must
// reject deleted plans (output creation) check IsDeleted themselves, while
// progress reads work against any plan that physically exists.
type PlanRepository interface {
	Create(ctx context.Context, plan *entity.ProductionPlan) error
	GetByID(ctx context.Context, id string) (*entity.ProductionPlan, error)
	List(ctx context.Context, filter PlanFilter) ([]*entity.ProductionPlan, int, error)
	Update(ctx context.Context, plan *entity.ProductionPlan) error

	// SetStarted marks the plan started regardless of current state and
	// returns the updated plan, or (nil, nil) when the plan is absent.
	SetStarted(ctx context.Context, id, updatedBy string) (*entity.ProductionPlan, error)

	// ForceComplete sets is_completed=true unconditionally (manual transition).
	ForceComplete(ctx context.Context, id, updatedBy string) (*entity.ProductionPlan, error)

	// SetCompleted writes only the completion flag; used by recomputation so
	// derived flips do not touch the audit columns.
	SetCompleted(ctx context.Context, id string, completed bool) error

	// SoftDelete flags the plan deleted. Returns false when the plan is absent.
	SoftDelete(ctx context.Context, id, deletedBy string) (bool, error)
}
