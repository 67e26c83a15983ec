package repository

import (
	"context"
	"time"

	"github.com/openmes/mes-api/internal/domain/entity"
)

// BOMFilter narrows BOM listings.
type BOMFilter struct {
	Parent      string     // parent product code
	EffectiveOn *time.Time // only rows whose effectivity window covers this date
}

// BOMRepository defines the persistence port for bill-of-materials rows.
type BOMRepository interface {
	Create(ctx context.Context, bom *entity.BOM) error
	GetByID(ctx context.Context, id string) (*entity.BOM, error)
	List(ctx context.Context, filter BOMFilter) ([]*entity.BOM, error)
	Update(ctx context.Context, bom *entity.BOM) error
}
