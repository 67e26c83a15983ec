package production

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/openmes/mes-api/internal/domain"
	"github.com/openmes/mes-api/internal/domain/entity"
	"github.com/openmes/mes-api/internal/domain/repository"
)

// ProgressService aggregates a plan's output ledger and drives the derived
// completion flag. Produced quantity is always a full re-sum of the ledger:
// no counter is kept, so concurrent writers converge on the correct total and
// a retried mutation cannot double-count.
type ProgressService struct {
	plans   repository.PlanRepository
	outputs repository.OutputRepository
}

// NewProgressService builds the aggregation service.
func NewProgressService(plans repository.PlanRepository, outputs repository.OutputRepository) *ProgressService {
	return &ProgressService{plans: plans, outputs: outputs}
}

// ComputeProgress returns the plan's current progress snapshot. Pure read:
// nothing is persisted, the stored completion flag is reported as-is.
func (s *ProgressService) ComputeProgress(ctx context.Context, planID string) (*entity.ProgressSnapshot, error) {
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	produced, err := s.outputs.SumQuantityByPlan(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	return snapshot(plan, produced, plan.IsCompleted), nil
}

// RecomputeCompletion re-derives is_completed from the ledger sum and persists
// the flag only when it differs from the stored value. Called synchronously
// after every ledger mutation; it can also un-complete a plan whose output was
// deleted or reduced, including one that was completed manually (no flag
// records which path set it).
func (s *ProgressService) RecomputeCompletion(ctx context.Context, planID string) (*entity.ProgressSnapshot, error) {
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	produced, err := s.outputs.SumQuantityByPlan(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	completed := produced.GreaterThanOrEqual(plan.PlanQty)
	if completed != plan.IsCompleted {
		if err := s.plans.SetCompleted(ctx, plan.ID, completed); err != nil {
			return nil, err
		}
	}
	return snapshot(plan, produced, completed), nil
}

func snapshot(plan *entity.ProductionPlan, produced decimal.Decimal, completed bool) *entity.ProgressSnapshot {
	remaining := plan.PlanQty.Sub(produced)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return &entity.ProgressSnapshot{
		PlanID:       plan.ID,
		PlanQty:      plan.PlanQty,
		ProducedQty:  produced,
		RemainingQty: remaining,
		Started:      plan.Started,
		IsCompleted:  completed,
	}
}
