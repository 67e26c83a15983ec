package repository

import (
	"context"

	"github.com/openmes/mes-api/internal/domain/entity"
)

// OperationRepository defines the persistence port for Operation master data.
type OperationRepository interface {
	Create(ctx context.Context, op *entity.Operation) error
	GetByCode(ctx context.Context, code string) (*entity.Operation, error)
	List(ctx context.Context, query string, limit, offset int) ([]*entity.Operation, int, error)
	Update(ctx context.Context, op *entity.Operation) error
}
