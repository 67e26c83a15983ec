package production_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openmes/mes-api/internal/domain"
	"github.com/openmes/mes-api/internal/domain/entity"
	"github.com/openmes/mes-api/internal/domain/repository"
)

// In-memory repositories backing the use case tests. They mirror the SQL
// repositories' contracts: (nil, nil) for missing rows, ErrDuplicate on the
// plan (product, ship date) constraint, full-scan ledger sums.

type fakePlanRepo struct {
	mu    sync.Mutex
	plans map[string]*entity.ProductionPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[string]*entity.ProductionPlan)}
}

func (r *fakePlanRepo) Create(_ context.Context, plan *entity.ProductionPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plans {
		if !p.IsDeleted && p.ProductCode == plan.ProductCode && sameDay(p.ShipDate, plan.ShipDate) {
			return domain.ErrDuplicate
		}
	}
	cp := *plan
	r.plans[plan.ID] = &cp
	return nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, id string) (*entity.ProductionPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlanRepo) List(_ context.Context, filter repository.PlanFilter) ([]*entity.ProductionPlan, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.ProductionPlan
	for _, p := range r.plans {
		if p.IsDeleted {
			continue
		}
		if filter.ProductCode != "" && p.ProductCode != filter.ProductCode {
			continue
		}
		switch filter.Status {
		case repository.PlanStatusStarted:
			if !p.Started {
				continue
			}
		case repository.PlanStatusNotStarted:
			if p.Started {
				continue
			}
		case repository.PlanStatusCompleted:
			if !p.IsCompleted {
				continue
			}
		}
		cp := *p
		all = append(all, &cp)
	}
	total := len(all)
	if filter.Offset > len(all) {
		return nil, total, nil
	}
	all = all[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(all) {
		all = all[:filter.Limit]
	}
	return all, total, nil
}

func (r *fakePlanRepo) Update(_ context.Context, plan *entity.ProductionPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[plan.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *plan
	r.plans[plan.ID] = &cp
	return nil
}

func (r *fakePlanRepo) SetStarted(_ context.Context, id, updatedBy string) (*entity.ProductionPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok || p.IsDeleted {
		return nil, nil
	}
	now := time.Now()
	p.Started = true
	p.UpdatedBy = updatedBy
	p.UpdatedAt = &now
	cp := *p
	return &cp, nil
}

func (r *fakePlanRepo) ForceComplete(_ context.Context, id, updatedBy string) (*entity.ProductionPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok || p.IsDeleted {
		return nil, nil
	}
	now := time.Now()
	p.IsCompleted = true
	p.UpdatedBy = updatedBy
	p.UpdatedAt = &now
	cp := *p
	return &cp, nil
}

func (r *fakePlanRepo) SetCompleted(_ context.Context, id string, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.IsCompleted = completed
	return nil
}

func (r *fakePlanRepo) SoftDelete(_ context.Context, id, deletedBy string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok || p.IsDeleted {
		return false, nil
	}
	now := time.Now()
	p.IsDeleted = true
	p.DeletedBy = deletedBy
	p.DeletedAt = &now
	return true, nil
}

type fakeOutputRepo struct {
	mu      sync.Mutex
	outputs map[string]*entity.ProductionOutput
}

func newFakeOutputRepo() *fakeOutputRepo {
	return &fakeOutputRepo{outputs: make(map[string]*entity.ProductionOutput)}
}

func (r *fakeOutputRepo) Create(_ context.Context, out *entity.ProductionOutput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *out
	r.outputs[out.ID] = &cp
	return nil
}

func (r *fakeOutputRepo) GetByID(_ context.Context, id string) (*entity.ProductionOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.outputs[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOutputRepo) List(_ context.Context, filter repository.OutputFilter) ([]*entity.ProductionOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.ProductionOutput
	for _, o := range r.outputs {
		if filter.PlanID != "" && o.PlanID != filter.PlanID {
			continue
		}
		cp := *o
		all = append(all, &cp)
	}
	return all, nil
}

func (r *fakeOutputRepo) Update(_ context.Context, out *entity.ProductionOutput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.outputs[out.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *out
	r.outputs[out.ID] = &cp
	return nil
}

func (r *fakeOutputRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.outputs, id)
	return nil
}

func (r *fakeOutputRepo) SumQuantityByPlan(_ context.Context, planID string) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sum := decimal.Zero
	for _, o := range r.outputs {
		if o.PlanID == planID {
			sum = sum.Add(o.Quantity)
		}
	}
	return sum, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[product.ProductCode]; ok && !p.IsDeleted {
		return domain.ErrDuplicate
	}
	cp := *product
	r.products[product.ProductCode] = &cp
	return nil
}

func (r *fakeProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[code]
	if !ok || p.IsDeleted {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Search(_ context.Context, query, category string, limit int) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.Product
	for _, p := range r.products {
		if p.IsDeleted {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(p.ProductCode, query) && !strings.Contains(p.ProductName, query) {
			continue
		}
		cp := *p
		all = append(all, &cp)
		if limit > 0 && len(all) == limit {
			break
		}
	}
	return all, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ProductCode]; !ok {
		return domain.ErrNotFound
	}
	cp := *product
	r.products[product.ProductCode] = &cp
	return nil
}

type fakeOperationRepo struct {
	mu  sync.Mutex
	ops map[string]*entity.Operation
}

func newFakeOperationRepo() *fakeOperationRepo {
	return &fakeOperationRepo{ops: make(map[string]*entity.Operation)}
}

func (r *fakeOperationRepo) Create(_ context.Context, op *entity.Operation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.ops[op.OperationCode]; ok && !o.IsDeleted {
		return domain.ErrDuplicate
	}
	cp := *op
	r.ops[op.OperationCode] = &cp
	return nil
}

func (r *fakeOperationRepo) GetByCode(_ context.Context, code string) (*entity.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.ops[code]
	if !ok || o.IsDeleted {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOperationRepo) List(_ context.Context, query string, limit, offset int) ([]*entity.Operation, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.Operation
	for _, o := range r.ops {
		if o.IsDeleted {
			continue
		}
		if query != "" && !strings.Contains(o.OperationCode, query) && !strings.Contains(o.OperationName, query) {
			continue
		}
		cp := *o
		all = append(all, &cp)
	}
	total := len(all)
	if offset > len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (r *fakeOperationRepo) Update(_ context.Context, op *entity.Operation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ops[op.OperationCode]; !ok {
		return domain.ErrNotFound
	}
	cp := *op
	r.ops[op.OperationCode] = &cp
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
