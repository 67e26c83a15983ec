package production

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/openmes/mes-api/internal/application/dto"
	"github.com/openmes/mes-api/internal/domain"
	"github.com/openmes/mes-api/internal/domain/entity"
	"github.com/openmes/mes-api/internal/domain/repository"
	"github.com/openmes/mes-api/pkg/logger"
)

// OutputUseCase mutations and listings for the production output ledger.
// Every mutation ends with RecomputeCompletion against the owning plan.
type OutputUseCase struct {
	outputs    repository.OutputRepository
	plans      repository.PlanRepository
	products   repository.ProductRepository
	operations repository.OperationRepository
	progress   *ProgressService
	log        *logger.Logger
}

// NewOutputUseCase builds the use case.
func NewOutputUseCase(
	outputs repository.OutputRepository,
	plans repository.PlanRepository,
	products repository.ProductRepository,
	operations repository.OperationRepository,
	progress *ProgressService,
	log *logger.Logger,
) *OutputUseCase {
	return &OutputUseCase{
		outputs:    outputs,
		plans:      plans,
		products:   products,
		operations: operations,
		progress:   progress,
		log:        log,
	}
}

// Add records a produced quantity against a plan.
//
// The plan must exist, not be soft-deleted and not be completed; product and
// (if given) operation codes must resolve to live rows. Over-production is
// detected but deliberately permitted: the write goes through and only a
// warning is logged.
func (uc *OutputUseCase) Add(ctx context.Context, createdBy string, in dto.CreateOutputRequest) (*dto.AddOutputResponse, error) {
	plan, err := uc.plans.GetByID(ctx, in.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil || plan.IsDeleted {
		return nil, domain.ErrInvalidReference
	}
	if plan.IsCompleted {
		return nil, domain.ErrPlanCompleted
	}
	if in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.products.GetByCode(ctx, in.ProductCode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrInvalidReference
	}
	if in.OperationCode != "" {
		op, err := uc.operations.GetByCode(ctx, in.OperationCode)
		if err != nil {
			return nil, err
		}
		if op == nil {
			return nil, domain.ErrInvalidReference
		}
	}

	produced, err := uc.outputs.SumQuantityByPlan(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	if produced.Add(in.Quantity).GreaterThan(plan.PlanQty) {
		uc.log.Warn().
			Str("plan_id", plan.ID).
			Str("produced_qty", produced.String()).
			Str("quantity", in.Quantity.String()).
			Str("plan_qty", plan.PlanQty.String()).
			Msg("output exceeds planned quantity, recording anyway")
	}

	productionDate := time.Now()
	if in.ProductionDate != nil {
		productionDate = *in.ProductionDate
	}
	out := &entity.ProductionOutput{
		ID:             uuid.New().String(),
		PlanID:         plan.ID,
		ProductCode:    in.ProductCode,
		ProductName:    product.ProductName,
		Quantity:       in.Quantity,
		ProductionDate: productionDate,
		OperationCode:  in.OperationCode,
		CreatedBy:      createdBy,
		CreatedAt:      time.Now(),
	}
	if err := uc.outputs.Create(ctx, out); err != nil {
		return nil, err
	}

	snap, err := uc.progress.RecomputeCompletion(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	return &dto.AddOutputResponse{
		Created:  *toOutputResponse(out),
		Progress: toProgressResponse(snap),
	}, nil
}

// List fetches ledger entries for a filter, newest first.
func (uc *OutputUseCase) List(ctx context.Context, filter repository.OutputFilter) (*dto.OutputListResponse, error) {
	outs, err := uc.outputs.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OutputResponse, 0, len(outs))
	for _, o := range outs {
		items = append(items, *toOutputResponse(o))
	}
	return &dto.OutputListResponse{Items: items}, nil
}

// Update overwrites the supplied fields of a ledger entry and recomputes the
// owning plan's completion. Unlike Add, references are not re-validated and a
// completed plan does not block the edit: both asymmetries are intentional.
func (uc *OutputUseCase) Update(ctx context.Context, id string, in dto.UpdateOutputRequest) (*dto.OutputResponse, error) {
	out, err := uc.outputs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, domain.ErrNotFound
	}
	if in.PlanID != nil {
		out.PlanID = *in.PlanID
	}
	if in.ProductCode != nil {
		out.ProductCode = *in.ProductCode
	}
	if in.ProductName != nil {
		out.ProductName = *in.ProductName
	}
	if in.Quantity != nil {
		if in.Quantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		out.Quantity = *in.Quantity
	}
	if in.ProductionDate != nil {
		out.ProductionDate = *in.ProductionDate
	}
	if in.OperationCode != nil {
		out.OperationCode = *in.OperationCode
	}
	if err := uc.outputs.Update(ctx, out); err != nil {
		return nil, err
	}
	// The entry may have been repointed at a plan that no longer exists; the
	// edit itself still stands in that case.
	if _, err := uc.progress.RecomputeCompletion(ctx, out.PlanID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return toOutputResponse(out), nil
}

// Delete removes a ledger entry permanently and recomputes the former owning
// plan, which may flip a completed plan back to open.
func (uc *OutputUseCase) Delete(ctx context.Context, id string) error {
	out, err := uc.outputs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if out == nil {
		return domain.ErrNotFound
	}
	if err := uc.outputs.Delete(ctx, id); err != nil {
		return err
	}
	if _, err := uc.progress.RecomputeCompletion(ctx, out.PlanID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

func toOutputResponse(o *entity.ProductionOutput) *dto.OutputResponse {
	if o == nil {
		return nil
	}
	return &dto.OutputResponse{
		ID:             o.ID,
		PlanID:         o.PlanID,
		ProductCode:    o.ProductCode,
		ProductName:    o.ProductName,
		Quantity:       o.Quantity,
		ProductionDate: o.ProductionDate,
		OperationCode:  o.OperationCode,
		CreatedBy:      o.CreatedBy,
		CreatedAt:      o.CreatedAt,
	}
}
