package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmes/mes-api/internal/application/dto"
	"github.com/openmes/mes-api/internal/domain"
	"github.com/openmes/mes-api/internal/domain/repository"
)

func (f *fixture) addOutput(t *testing.T, planID string, qty int64) *dto.AddOutputResponse {
	t.Helper()
	out, err := f.outputUC.Add(context.Background(), "tester", dto.CreateOutputRequest{
		PlanID:      planID,
		ProductCode: "TP-CHAIR-01",
		Quantity:    decimal.NewFromInt(qty),
	})
	require.NoError(t, err)
	return out
}

func TestOutputAdd_AccumulatesAndCompletesAtTarget(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)

	first := f.addOutput(t, plan.ID, 20)
	assert.True(t, first.Progress.ProducedQty.Equal(decimal.NewFromInt(20)))
	assert.True(t, first.Progress.RemainingQty.Equal(decimal.NewFromInt(80)))
	assert.False(t, first.Progress.IsCompleted)

	second := f.addOutput(t, plan.ID, 30)
	assert.True(t, second.Progress.ProducedQty.Equal(decimal.NewFromInt(50)))
	assert.False(t, second.Progress.IsCompleted)

	third := f.addOutput(t, plan.ID, 50)
	assert.True(t, third.Progress.ProducedQty.Equal(decimal.NewFromInt(100)))
	assert.True(t, third.Progress.RemainingQty.IsZero())
	assert.True(t, third.Progress.IsCompleted, "reaching the plan quantity must complete the plan")
}

func TestOutputAdd_OverProductionPermittedAndRemainingClamped(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)

	out := f.addOutput(t, plan.ID, 150)
	assert.True(t, out.Progress.ProducedQty.Equal(decimal.NewFromInt(150)))
	assert.True(t, out.Progress.RemainingQty.IsZero(), "remaining never goes negative")
	assert.True(t, out.Progress.IsCompleted)
}

func TestOutputAdd_CompletedPlanRejected(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)
	f.addOutput(t, plan.ID, 100)

	_, err := f.outputUC.Add(context.Background(), "tester", dto.CreateOutputRequest{
		PlanID:      plan.ID,
		ProductCode: "TP-CHAIR-01",
		Quantity:    decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrPlanCompleted)
}

func TestOutputAdd_DeletedPlanRejected(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)
	ctx := context.Background()
	require.NoError(t, f.planUC.Delete(ctx, plan.ID, "tester"))

	_, err := f.outputUC.Add(ctx, "tester", dto.CreateOutputRequest{
		PlanID:      plan.ID,
		ProductCode: "TP-CHAIR-01",
		Quantity:    decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestOutputAdd_UnknownProductLeavesLedgerEmpty(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)
	ctx := context.Background()

	_, err := f.outputUC.Add(ctx, "tester", dto.CreateOutputRequest{
		PlanID:      plan.ID,
		ProductCode: "NO-SUCH-PRODUCT",
		Quantity:    decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	entries, err := f.outputs.List(ctx, repository.OutputFilter{PlanID: plan.ID})
	require.NoError(t, err)
	assert.Empty(t, entries, "a rejected add must not leave a ledger row behind")
}

func TestOutputAdd_UnknownOperationRejected(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)

	_, err := f.outputUC.Add(context.Background(), "tester", dto.CreateOutputRequest{
		PlanID:        plan.ID,
		ProductCode:   "TP-CHAIR-01",
		Quantity:      decimal.NewFromInt(10),
		OperationCode: "NO-SUCH-OP",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestOutputAdd_NegativeQuantityRejected(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)

	_, err := f.outputUC.Add(context.Background(), "tester", dto.CreateOutputRequest{
		PlanID:      plan.ID,
		ProductCode: "TP-CHAIR-01",
		Quantity:    decimal.NewFromInt(-3),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOutputAdd_DefaultsProductionDateAndDenormalizesName(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)

	before := time.Now()
	out := f.addOutput(t, plan.ID, 10)
	assert.Equal(t, "Office chair", out.Created.ProductName)
	assert.False(t, out.Created.ProductionDate.Before(before))
}

func TestOutputDelete_UncompletesPlan(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)
	ctx := context.Background()

	f.addOutput(t, plan.ID, 60)
	last := f.addOutput(t, plan.ID, 40)
	assert.True(t, last.Progress.IsCompleted)

	require.NoError(t, f.outputUC.Delete(ctx, last.Created.ID))

	snap, err := f.planUC.Progress(ctx, plan.ID)
	require.NoError(t, err)
	assert.False(t, snap.IsCompleted, "removing output below the target must reopen the plan")
	assert.True(t, snap.ProducedQty.Equal(decimal.NewFromInt(60)))
}

func TestOutputUpdate_ReducedQuantityUncompletesPlan(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)
	ctx := context.Background()

	out := f.addOutput(t, plan.ID, 100)
	assert.True(t, out.Progress.IsCompleted)

	smaller := decimal.NewFromInt(70)
	_, err := f.outputUC.Update(ctx, out.Created.ID, dto.UpdateOutputRequest{Quantity: &smaller})
	require.NoError(t, err)

	snap, err := f.planUC.Progress(ctx, plan.ID)
	require.NoError(t, err)
	assert.False(t, snap.IsCompleted)
	assert.True(t, snap.RemainingQty.Equal(decimal.NewFromInt(30)))
}

func TestOutputUpdate_RevertsManualCompletion(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)
	ctx := context.Background()

	out := f.addOutput(t, plan.ID, 10)

	_, err := f.planUC.Complete(ctx, plan.ID, "tester")
	require.NoError(t, err)

	// Any ledger edit rederives the flag from the sum; the manual completion
	// leaves no trace that would protect it.
	touched := decimal.NewFromInt(15)
	_, err = f.outputUC.Update(ctx, out.Created.ID, dto.UpdateOutputRequest{Quantity: &touched})
	require.NoError(t, err)

	snap, err := f.planUC.Progress(ctx, plan.ID)
	require.NoError(t, err)
	assert.False(t, snap.IsCompleted, "recomputation overrides a manual complete")
}

func TestOutputUpdate_MissingEntry(t *testing.T) {
	f := newFixture(t)
	qty := decimal.NewFromInt(5)
	_, err := f.outputUC.Update(context.Background(), "missing", dto.UpdateOutputRequest{Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOutputDelete_MissingEntry(t *testing.T) {
	f := newFixture(t)
	err := f.outputUC.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOutputUpdate_NoReferenceRevalidation(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)
	ctx := context.Background()

	out := f.addOutput(t, plan.ID, 10)

	// Edits accept codes that no longer resolve; only creation validates.
	ghost := "GHOST-PRODUCT"
	updated, err := f.outputUC.Update(ctx, out.Created.ID, dto.UpdateOutputRequest{ProductCode: &ghost})
	require.NoError(t, err)
	assert.Equal(t, ghost, updated.ProductCode)
}

func TestProgress_MissingPlan(t *testing.T) {
	f := newFixture(t)
	_, err := f.planUC.Progress(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProgress_ReadDoesNotPersistCompletion(t *testing.T) {
	f := newFixture(t)
	plan := f.createPlan(t, 100)
	ctx := context.Background()

	// Put the ledger over the target without going through the use case, so no
	// recomputation has run yet.
	f.addOutput(t, plan.ID, 50)
	raisedQty := decimal.NewFromInt(10)
	_, err := f.planUC.Update(ctx, plan.ID, "tester", dto.UpdatePlanRequest{PlanQty: &raisedQty})
	require.NoError(t, err)

	// The stored flag is stale (false) and the pure read reports it as-is.
	snap, err := f.progress.ComputeProgress(ctx, plan.ID)
	require.NoError(t, err)
	assert.False(t, snap.IsCompleted, "ComputeProgress must not derive or persist completion")
	assert.True(t, snap.ProducedQty.Equal(decimal.NewFromInt(50)))
	assert.True(t, snap.RemainingQty.IsZero())

	// The next ledger mutation converges the flag.
	f.addOutput(t, plan.ID, 1)
	stored, err := f.plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsCompleted)
}
