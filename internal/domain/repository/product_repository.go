package repository

import (
	"context"

	"github.com/openmes/mes-api/internal/domain/entity"
)

// ProductRepository defines the persistence port for Product master data.
// GetByCode only resolves live (non-deleted) rows; soft delete goes through Update.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	Search(ctx context.Context, query, category string, limit int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
}
