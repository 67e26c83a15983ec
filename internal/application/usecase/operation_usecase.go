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

// OperationUseCase CRUD for operation master data.
type OperationUseCase struct {
	operations repository.OperationRepository
}

// NewOperationUseCase builds the use case.
func NewOperationUseCase(operations repository.OperationRepository) *OperationUseCase {
	return &OperationUseCase{operations: operations}
}

// Create registers an operation.
func (uc *OperationUseCase) Create(ctx context.Context, createdBy string, in dto.CreateOperationRequest) (*dto.OperationResponse, error) {
	if in.CycleTimeSeconds < 0 {
		return nil, domain.ErrInvalidInput
	}
	op := &entity.Operation{
		ID:               uuid.New().String(),
		OperationCode:    in.OperationCode,
		OperationName:    in.OperationName,
		CycleTimeSeconds: in.CycleTimeSeconds,
		CreatedBy:        createdBy,
		CreatedAt:        time.Now(),
	}
	if err := uc.operations.Create(ctx, op); err != nil {
		return nil, err
	}
	return toOperationResponse(op), nil
}

// Get resolves a live operation by code.
func (uc *OperationUseCase) Get(ctx context.Context, code string) (*dto.OperationResponse, error) {
	op, err := uc.operations.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	return toOperationResponse(op), nil
}

// List pages operations matching the query.
func (uc *OperationUseCase) List(ctx context.Context, query string, page dto.PageRequest) (*dto.OperationListResponse, error) {
	ops, total, err := uc.operations.List(ctx, query, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.OperationResponse, 0, len(ops))
	for _, op := range ops {
		items = append(items, *toOperationResponse(op))
	}
	return &dto.OperationListResponse{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      total,
		TotalPages: page.TotalPages(total),
	}, nil
}

// Update overwrites the supplied fields. The operation code itself is immutable.
func (uc *OperationUseCase) Update(ctx context.Context, code, updatedBy string, in dto.UpdateOperationRequest) (*dto.OperationResponse, error) {
	op, err := uc.operations.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	if in.OperationName != nil {
		op.OperationName = *in.OperationName
	}
	if in.CycleTimeSeconds != nil {
		if *in.CycleTimeSeconds < 0 {
			return nil, domain.ErrInvalidInput
		}
		op.CycleTimeSeconds = *in.CycleTimeSeconds
	}
	now := time.Now()
	op.UpdatedBy = updatedBy
	op.UpdatedAt = &now
	if err := uc.operations.Update(ctx, op); err != nil {
		return nil, err
	}
	return toOperationResponse(op), nil
}

// Delete soft-deletes the operation. BOM rows and ledger entries referencing
// the code are left in place.
func (uc *OperationUseCase) Delete(ctx context.Context, code, deletedBy string) error {
	op, err := uc.operations.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if op == nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	op.IsDeleted = true
	op.UpdatedBy = deletedBy
	op.UpdatedAt = &now
	return uc.operations.Update(ctx, op)
}

func toOperationResponse(op *entity.Operation) *dto.OperationResponse {
	if op == nil {
		return nil
	}
	return &dto.OperationResponse{
		ID:               op.ID,
		OperationCode:    op.OperationCode,
		OperationName:    op.OperationName,
		CycleTimeSeconds: op.CycleTimeSeconds,
		CreatedBy:        op.CreatedBy,
		CreatedAt:        op.CreatedAt,
		UpdatedBy:        op.UpdatedBy,
		UpdatedAt:        op.UpdatedAt,
	}
}
