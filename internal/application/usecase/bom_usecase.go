package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/openmes/mes-api/internal/application/dto"
	"github.com/openmes/mes-api/internal/domain"
	"github.com/openmes/mes-api/internal/domain/entity"
	"github.com/openmes/mes-api/internal/domain/repository"
)

// BOMUseCase CRUD for bill-of-materials rows.
type BOMUseCase struct {
	boms       repository.BOMRepository
	products   repository.ProductRepository
	operations repository.OperationRepository
}

// NewBOMUseCase builds the use case.
func NewBOMUseCase(boms repository.BOMRepository, products repository.ProductRepository, operations repository.OperationRepository) *BOMUseCase {
	return &BOMUseCase{boms: boms, products: products, operations: operations}
}

// Create registers a BOM row. Parent and component product codes, plus the
// operation code when given, must resolve to live master rows. EffectiveFrom
// defaults to now; when both window bounds are given they must be ordered.
func (uc *BOMUseCase) Create(ctx context.Context, createdBy string, in dto.CreateBOMRequest) (*dto.BOMResponse, error) {
	if in.QuantityPer.IsNegative() || in.QuantityPer.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.ScrapRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkReferences(ctx, in.ParentProductCode, in.ComponentProductCode, in.OperationCode); err != nil {
		return nil, err
	}
	effectiveFrom := time.Now()
	if in.EffectiveFrom != nil {
		effectiveFrom = *in.EffectiveFrom
	}
	if in.EffectiveTo != nil && !in.EffectiveTo.After(effectiveFrom) {
		return nil, domain.ErrInvalidInput
	}
	bom := &entity.BOM{
		ID:                   uuid.New().String(),
		ParentProductCode:    in.ParentProductCode,
		ComponentProductCode: in.ComponentProductCode,
		QuantityPer:          in.QuantityPer,
		OperationCode:        in.OperationCode,
		ScrapRate:            in.ScrapRate,
		EffectiveFrom:        effectiveFrom,
		EffectiveTo:          in.EffectiveTo,
		CreatedBy:            createdBy,
		CreatedAt:            time.Now(),
	}
	if err := uc.boms.Create(ctx, bom); err != nil {
		return nil, err
	}
	return toBOMResponse(bom), nil
}

// Get resolves a live BOM row by id.
func (uc *BOMUseCase) Get(ctx context.Context, id string) (*dto.BOMResponse, error) {
	bom, err := uc.boms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bom == nil {
		return nil, domain.ErrNotFound
	}
	return toBOMResponse(bom), nil
}

// List fetches BOM rows, optionally narrowed to a parent product and an
// effectivity date.
func (uc *BOMUseCase) List(ctx context.Context, filter repository.BOMFilter) (*dto.BOMListResponse, error) {
	boms, err := uc.boms.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BOMResponse, 0, len(boms))
	for _, b := range boms {
		items = append(items, *toBOMResponse(b))
	}
	return &dto.BOMListResponse{Items: items}, nil
}

// Update overwrites the supplied fields. Changed references are re-validated.
func (uc *BOMUseCase) Update(ctx context.Context, id, updatedBy string, in dto.UpdateBOMRequest) (*dto.BOMResponse, error) {
	bom, err := uc.boms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bom == nil {
		return nil, domain.ErrNotFound
	}
	if in.ParentProductCode != nil {
		bom.ParentProductCode = *in.ParentProductCode
	}
	if in.ComponentProductCode != nil {
		bom.ComponentProductCode = *in.ComponentProductCode
	}
	if in.OperationCode != nil {
		bom.OperationCode = *in.OperationCode
	}
	if in.ParentProductCode != nil || in.ComponentProductCode != nil || in.OperationCode != nil {
		if err := uc.checkReferences(ctx, bom.ParentProductCode, bom.ComponentProductCode, bom.OperationCode); err != nil {
			return nil, err
		}
	}
	if in.QuantityPer != nil {
		if in.QuantityPer.IsNegative() || in.QuantityPer.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		bom.QuantityPer = *in.QuantityPer
	}
	if in.ScrapRate != nil {
		if in.ScrapRate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		bom.ScrapRate = *in.ScrapRate
	}
	if in.EffectiveFrom != nil {
		bom.EffectiveFrom = *in.EffectiveFrom
	}
	if in.EffectiveTo != nil {
		bom.EffectiveTo = in.EffectiveTo
	}
	if bom.EffectiveTo != nil && !bom.EffectiveTo.After(bom.EffectiveFrom) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	bom.UpdatedBy = updatedBy
	bom.UpdatedAt = &now
	if err := uc.boms.Update(ctx, bom); err != nil {
		return nil, err
	}
	return toBOMResponse(bom), nil
}

// Delete soft-deletes the BOM row.
func (uc *BOMUseCase) Delete(ctx context.Context, id, deletedBy string) error {
	bom, err := uc.boms.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bom == nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	bom.IsDeleted = true
	bom.UpdatedBy = deletedBy
	bom.UpdatedAt = &now
	return uc.boms.Update(ctx, bom)
}

func (uc *BOMUseCase) checkReferences(ctx context.Context, parent, component, operation string) error {
	p, err := uc.products.GetByCode(ctx, parent)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrInvalidReference
	}
	c, err := uc.products.GetByCode(ctx, component)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrInvalidReference
	}
	if operation != "" {
		op, err := uc.operations.GetByCode(ctx, operation)
		if err != nil {
			return err
		}
		if op == nil {
			return domain.ErrInvalidReference
		}
	}
	return nil
}

func toBOMResponse(b *entity.BOM) *dto.BOMResponse {
	if b == nil {
		return nil
	}
	return &dto.BOMResponse{
		ID:                   b.ID,
		ParentProductCode:    b.ParentProductCode,
		ComponentProductCode: b.ComponentProductCode,
		QuantityPer:          b.QuantityPer,
		OperationCode:        b.OperationCode,
		ScrapRate:            b.ScrapRate,
		EffectiveFrom:        b.EffectiveFrom,
		EffectiveTo:          b.EffectiveTo,
		CreatedBy:            b.CreatedBy,
		CreatedAt:            b.CreatedAt,
		UpdatedBy:            b.UpdatedBy,
		UpdatedAt:            b.UpdatedAt,
	}
}
