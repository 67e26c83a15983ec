package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmes/mes-api/internal/application/dto"
	"github.com/openmes/mes-api/internal/application/production"
	"github.com/openmes/mes-api/internal/domain"
	"github.com/openmes/mes-api/internal/domain/entity"
	"github.com/openmes/mes-api/internal/domain/repository"
	"github.com/openmes/mes-api/pkg/logger"
)

func filterStatus(s string) repository.PlanFilter {
	return repository.PlanFilter{Status: s}
}

type fixture struct {
	plans      *fakePlanRepo
	outputs    *fakeOutputRepo
	products   *fakeProductRepo
	operations *fakeOperationRepo
	progress   *production.ProgressService
	planUC     *production.PlanUseCase
	outputUC   *production.OutputUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		plans:      newFakePlanRepo(),
		outputs:    newFakeOutputRepo(),
		products:   newFakeProductRepo(),
		operations: newFakeOperationRepo(),
	}
	f.progress = production.NewProgressService(f.plans, f.outputs)
	f.planUC = production.NewPlanUseCase(f.plans, f.products, f.progress)
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	f.outputUC = production.NewOutputUseCase(f.outputs, f.plans, f.products, f.operations, f.progress, log)

	require.NoError(t, f.products.Create(context.Background(), &entity.Product{
		ID:          "prod-1",
		ProductCode: "TP-CHAIR-01",
		ProductName: "Office chair",
		Category:    entity.CategoryFinished,
		CreatedAt:   time.Now(),
	}))
	return f
}

func (f *fixture) createPlan(t *testing.T, qty int64) *dto.PlanResponse {
	t.Helper()
	plan, err := f.planUC.Create(context.Background(), "tester", dto.CreatePlanRequest{
		ProductCode: "TP-CHAIR-01",
		ShipDate:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		PlanQty:     decimal.NewFromInt(qty),
	})
	require.NoError(t, err)
	return plan
}

func TestPlanCreate_StartsOpenAndNotStarted(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)

	assert.False(t, plan.Started)
	assert.False(t, plan.IsCompleted)
	assert.True(t, plan.PlanQty.Equal(decimal.NewFromInt(100)))
}

func TestPlanCreate_UnknownProductRejected(t *testing.T) {
	f := newFixture(t)
	_, err := f.planUC.Create(context.Background(), "tester", dto.CreatePlanRequest{
		ProductCode: "NO-SUCH-PRODUCT",
		ShipDate:    time.Now(),
		PlanQty:     decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestPlanCreate_DuplicateProductAndShipDateRejected(t *testing.T) {
	f := newFixture(t)
	f.createPlan(t, 100)

	_, err := f.planUC.Create(context.Background(), "tester", dto.CreatePlanRequest{
		ProductCode: "TP-CHAIR-01",
		ShipDate:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		PlanQty:     decimal.NewFromInt(50),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestPlanCreate_NegativeQuantityRejected(t *testing.T) {
	f := newFixture(t)
	_, err := f.planUC.Create(context.Background(), "tester", dto.CreatePlanRequest{
		ProductCode: "TP-CHAIR-01",
		ShipDate:    time.Now(),
		PlanQty:     decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlanStart_Idempotent(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)
	ctx := context.Background()

	first, err := f.planUC.Start(ctx, plan.ID, "tester")
	require.NoError(t, err)
	assert.True(t, first.Started)

	second, err := f.planUC.Start(ctx, plan.ID, "tester")
	require.NoError(t, err)
	assert.True(t, second.Started, "repeating start must leave the plan started")
	assert.False(t, second.IsCompleted, "start must not touch completion")
}

func TestPlanStart_MissingPlan(t *testing.T) {
	f := newFixture(t)
	_, err := f.planUC.Start(context.Background(), "missing", "tester")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlanComplete_ManualWithZeroProduced(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)
	ctx := context.Background()

	completed, err := f.planUC.Complete(ctx, plan.ID, "tester")
	require.NoError(t, err)
	assert.True(t, completed.IsCompleted, "manual complete forces the flag even with nothing produced")

	snap, err := f.planUC.Progress(ctx, plan.ID)
	require.NoError(t, err)
	assert.True(t, snap.IsCompleted)
	assert.True(t, snap.ProducedQty.IsZero())
	assert.True(t, snap.RemainingQty.Equal(decimal.NewFromInt(100)))
}

func TestPlanGet_IncludesProgress(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)
	ctx := context.Background()

	_, err := f.outputUC.Add(ctx, "tester", dto.CreateOutputRequest{
		PlanID:      plan.ID,
		ProductCode: "TP-CHAIR-01",
		Quantity:    decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	detail, err := f.planUC.Get(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, detail.Plan.ID)
	assert.True(t, detail.Progress.ProducedQty.Equal(decimal.NewFromInt(40)))
	assert.True(t, detail.Progress.RemainingQty.Equal(decimal.NewFromInt(60)))
}

func TestPlanDelete_SoftAndNotFoundAfterwardsForDelete(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)
	ctx := context.Background()

	require.NoError(t, f.planUC.Delete(ctx, plan.ID, "tester"))

	// Repeating the delete finds nothing live.
	err := f.planUC.Delete(ctx, plan.ID, "tester")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The row still physically exists, so progress reads keep working.
	snap, err := f.planUC.Progress(ctx, plan.ID)
	require.NoError(t, err)
	assert.True(t, snap.PlanQty.Equal(decimal.NewFromInt(100)))
}

func TestPlanUpdate_MergesOnlySuppliedFields(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)
	ctx := context.Background()

	newQty := decimal.NewFromInt(80)
	updated, err := f.planUC.Update(ctx, plan.ID, "editor", dto.UpdatePlanRequest{PlanQty: &newQty})
	require.NoError(t, err)

	assert.True(t, updated.PlanQty.Equal(newQty))
	assert.Equal(t, plan.ProductCode, updated.ProductCode)
	assert.Equal(t, "editor", updated.UpdatedBy)
}

func TestPlanList_StatusFilter(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)
	ctx := context.Background()

	_, err := f.planUC.Start(ctx, plan.ID, "tester")
	require.NoError(t, err)

	page := dto.PageRequest{Page: 1, PageSize: 20}
	started, err := f.planUC.List(ctx, filterStatus("started"), page)
	require.NoError(t, err)
	assert.Len(t, started.Items, 1)

	notStarted, err := f.planUC.List(ctx, filterStatus("not_started"), page)
	require.NoError(t, err)
	assert.Empty(t, notStarted.Items)
}
