package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmes/mes-api/internal/application/dto"
	"github.com/openmes/mes-api/internal/application/usecase"
	"github.com/openmes/mes-api/internal/domain"
	"github.com/openmes/mes-api/internal/domain/entity"
	"github.com/openmes/mes-api/internal/domain/repository"
)

type memBOMRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.BOM
}

func newMemBOMRepo() *memBOMRepo { return &memBOMRepo{rows: make(map[string]*entity.BOM)} }

func (r *memBOMRepo) Create(_ context.Context, bom *entity.BOM) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *bom
	r.rows[bom.ID] = &cp
	return nil
}

func (r *memBOMRepo) GetByID(_ context.Context, id string) (*entity.BOM, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.rows[id]
	if !ok || b.IsDeleted {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *memBOMRepo) List(_ context.Context, filter repository.BOMFilter) ([]*entity.BOM, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.BOM
	for _, b := range r.rows {
		if b.IsDeleted {
			continue
		}
		if filter.Parent != "" && b.ParentProductCode != filter.Parent {
			continue
		}
		if filter.EffectiveOn != nil {
			on := *filter.EffectiveOn
			if b.EffectiveFrom.After(on) {
				continue
			}
			if b.EffectiveTo != nil && b.EffectiveTo.Before(on) {
				continue
			}
		}
		cp := *b
		all = append(all, &cp)
	}
	return all, nil
}

func (r *memBOMRepo) Update(_ context.Context, bom *entity.BOM) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[bom.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *bom
	r.rows[bom.ID] = &cp
	return nil
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ProductCode] = p
	return nil
}

func (r *memProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	p, ok := r.products[code]
	if !ok || p.IsDeleted {
		return nil, nil
	}
	return p, nil
}

func (r *memProductRepo) Search(_ context.Context, _, _ string, _ int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ProductCode] = p
	return nil
}

type memOperationRepo struct {
	ops map[string]*entity.Operation
}

func (r *memOperationRepo) Create(_ context.Context, op *entity.Operation) error {
	r.ops[op.OperationCode] = op
	return nil
}

func (r *memOperationRepo) GetByCode(_ context.Context, code string) (*entity.Operation, error) {
	op, ok := r.ops[code]
	if !ok || op.IsDeleted {
		return nil, nil
	}
	return op, nil
}

func (r *memOperationRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Operation, int, error) {
	return nil, 0, nil
}

func (r *memOperationRepo) Update(_ context.Context, op *entity.Operation) error {
	r.ops[op.OperationCode] = op
	return nil
}

func newBOMFixture() *usecase.BOMUseCase {
	products := &memProductRepo{products: map[string]*entity.Product{
		"TP-CHAIR-01":  {ID: "p1", ProductCode: "TP-CHAIR-01", ProductName: "Office chair", Category: entity.CategoryFinished},
		"NVL-TUBE-25":  {ID: "p2", ProductCode: "NVL-TUBE-25", ProductName: "Steel tube", Category: entity.CategoryRawMaterial},
		"BTP-FRAME-01": {ID: "p3", ProductCode: "BTP-FRAME-01", ProductName: "Frame", Category: entity.CategorySemiFinished},
	}}
	operations := &memOperationRepo{ops: map[string]*entity.Operation{
		"OP-WELD": {ID: "o1", OperationCode: "OP-WELD", OperationName: "Welding"},
	}}
	return usecase.NewBOMUseCase(newMemBOMRepo(), products, operations)
}

func TestBOMCreate_ValidRow(t *testing.T) {
	uc := newBOMFixture()
	out, err := uc.Create(context.Background(), "tester", dto.CreateBOMRequest{
		ParentProductCode:    "BTP-FRAME-01",
		ComponentProductCode: "NVL-TUBE-25",
		QuantityPer:          decimal.NewFromFloat(3.2),
		OperationCode:        "OP-WELD",
	})
	require.NoError(t, err)
	assert.Equal(t, "BTP-FRAME-01", out.ParentProductCode)
	assert.False(t, out.EffectiveFrom.IsZero(), "effective_from defaults to now")
}

func TestBOMCreate_UnknownComponentRejected(t *testing.T) {
	uc := newBOMFixture()
	_, err := uc.Create(context.Background(), "tester", dto.CreateBOMRequest{
		ParentProductCode:    "BTP-FRAME-01",
		ComponentProductCode: "NO-SUCH",
		QuantityPer:          decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestBOMCreate_UnknownOperationRejected(t *testing.T) {
	uc := newBOMFixture()
	_, err := uc.Create(context.Background(), "tester", dto.CreateBOMRequest{
		ParentProductCode:    "BTP-FRAME-01",
		ComponentProductCode: "NVL-TUBE-25",
		QuantityPer:          decimal.NewFromInt(1),
		OperationCode:        "NO-SUCH-OP",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestBOMCreate_ZeroQuantityRejected(t *testing.T) {
	uc := newBOMFixture()
	_, err := uc.Create(context.Background(), "tester", dto.CreateBOMRequest{
		ParentProductCode:    "BTP-FRAME-01",
		ComponentProductCode: "NVL-TUBE-25",
		QuantityPer:          decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBOMCreate_InvertedWindowRejected(t *testing.T) {
	uc := newBOMFixture()
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, -1, 0)
	_, err := uc.Create(context.Background(), "tester", dto.CreateBOMRequest{
		ParentProductCode:    "BTP-FRAME-01",
		ComponentProductCode: "NVL-TUBE-25",
		QuantityPer:          decimal.NewFromInt(1),
		EffectiveFrom:        &from,
		EffectiveTo:          &to,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBOMList_EffectivityFilter(t *testing.T) {
	uc := newBOMFixture()
	ctx := context.Background()

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	_, err := uc.Create(ctx, "tester", dto.CreateBOMRequest{
		ParentProductCode:    "TP-CHAIR-01",
		ComponentProductCode: "BTP-FRAME-01",
		QuantityPer:          decimal.NewFromInt(1),
		EffectiveFrom:        &from,
		EffectiveTo:          &to,
	})
	require.NoError(t, err)

	inside := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	got, err := uc.List(ctx, repository.BOMFilter{Parent: "TP-CHAIR-01", EffectiveOn: &inside})
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)

	outside := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	got, err = uc.List(ctx, repository.BOMFilter{Parent: "TP-CHAIR-01", EffectiveOn: &outside})
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestBOMDelete_SoftDeleteHidesRow(t *testing.T) {
	uc := newBOMFixture()
	ctx := context.Background()

	out, err := uc.Create(ctx, "tester", dto.CreateBOMRequest{
		ParentProductCode:    "BTP-FRAME-01",
		ComponentProductCode: "NVL-TUBE-25",
		QuantityPer:          decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, out.ID, "tester"))

	_, err = uc.Get(ctx, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
