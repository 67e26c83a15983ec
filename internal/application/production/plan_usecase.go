package production

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/openmes/mes-api/internal/application/dto"
	"github.com/openmes/mes-api/internal/domain"
	"github.com/openmes/mes-api/internal/domain/entity"
	"github.com/openmes/mes-api/internal/domain/repository"
)

// PlanUseCase CRUD and state transitions for production plans.
type PlanUseCase struct {
	plans    repository.PlanRepository
	products repository.ProductRepository
	progress *ProgressService
}

// NewPlanUseCase builds the use case.
func NewPlanUseCase(plans repository.PlanRepository, products repository.ProductRepository, progress *ProgressService) *PlanUseCase {
	return &PlanUseCase{plans: plans, products: products, progress: progress}
}

// Create registers a new plan. The product code must resolve to a live product;
// a live plan for the same (product, ship date) surfaces as ErrDuplicate.
func (uc *PlanUseCase) Create(ctx context.Context, createdBy string, in dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	product, err := uc.products.GetByCode(ctx, in.ProductCode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrInvalidReference
	}
	if in.PlanQty.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	plan := &entity.ProductionPlan{
		ID:          uuid.New().String(),
		ProductCode: in.ProductCode,
		ShipDate:    in.ShipDate,
		PlanQty:     in.PlanQty,
		Started:     false,
		IsCompleted: false,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}
	if err := uc.plans.Create(ctx, plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// List pages plans with the given filter.
func (uc *PlanUseCase) List(ctx context.Context, filter repository.PlanFilter, page dto.PageRequest) (*dto.PlanListResponse, error) {
	filter.Limit = page.PageSize
	filter.Offset = page.Offset()
	plans, total, err := uc.plans.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		items = append(items, *toPlanResponse(p))
	}
	return &dto.PlanListResponse{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      total,
		TotalPages: page.TotalPages(total),
	}, nil
}

// Get returns the plan together with its freshly computed progress.
func (uc *PlanUseCase) Get(ctx context.Context, id string) (*dto.PlanDetailResponse, error) {
	plan, err := uc.plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	snap, err := uc.progress.ComputeProgress(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	return &dto.PlanDetailResponse{
		Plan:     *toPlanResponse(plan),
		Progress: toProgressResponse(snap),
	}, nil
}

// Progress returns the plan's progress snapshot alone.
func (uc *PlanUseCase) Progress(ctx context.Context, id string) (*dto.ProgressResponse, error) {
	snap, err := uc.progress.ComputeProgress(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toProgressResponse(snap)
	return &out, nil
}

// Update edits the plan's target fields. References are not re-validated on
// update, matching creation-only validation on the ledger side.
func (uc *PlanUseCase) Update(ctx context.Context, id, updatedBy string, in dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	plan, err := uc.plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProductCode != nil {
		plan.ProductCode = *in.ProductCode
	}
	if in.ShipDate != nil {
		plan.ShipDate = *in.ShipDate
	}
	if in.PlanQty != nil {
		if in.PlanQty.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		plan.PlanQty = *in.PlanQty
	}
	now := time.Now()
	plan.UpdatedBy = updatedBy
	plan.UpdatedAt = &now
	if err := uc.plans.Update(ctx, plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// Delete soft-deletes the plan. Ledger entries are left untouched (no cascade).
func (uc *PlanUseCase) Delete(ctx context.Context, id, deletedBy string) error {
	ok, err := uc.plans.SoftDelete(ctx, id, deletedBy)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Start marks the plan started. Idempotent: repeating the call changes nothing.
func (uc *PlanUseCase) Start(ctx context.Context, id, updatedBy string) (*dto.PlanResponse, error) {
	plan, err := uc.plans.SetStarted(ctx, id, updatedBy)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	return toPlanResponse(plan), nil
}

// Complete forces is_completed=true regardless of produced quantity. A later
// ledger mutation recomputes the flag and may revert it.
func (uc *PlanUseCase) Complete(ctx context.Context, id, updatedBy string) (*dto.PlanResponse, error) {
	plan, err := uc.plans.ForceComplete(ctx, id, updatedBy)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	return toPlanResponse(plan), nil
}

func toPlanResponse(p *entity.ProductionPlan) *dto.PlanResponse {
	if p == nil {
		return nil
	}
	return &dto.PlanResponse{
		ID:          p.ID,
		ProductCode: p.ProductCode,
		ShipDate:    p.ShipDate,
		PlanQty:     p.PlanQty,
		Started:     p.Started,
		IsCompleted: p.IsCompleted,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedBy:   p.UpdatedBy,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProgressResponse(s *entity.ProgressSnapshot) dto.ProgressResponse {
	return dto.ProgressResponse{
		PlanID:       s.PlanID,
		PlanQty:      s.PlanQty,
		ProducedQty:  s.ProducedQty,
		RemainingQty: s.RemainingQty,
		Started:      s.Started,
		IsCompleted:  s.IsCompleted,
	}
}
