package repository

import (
	"context"

	"github.com/openmes/mes-api/internal/domain/entity"
)

// EmployeeRepository defines the persistence port for Employee master data.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *entity.Employee) error
	GetByCode(ctx context.Context, code string) (*entity.Employee, error)
	List(ctx context.Context, query string, limit, offset int) ([]*entity.Employee, int, error)
	Update(ctx context.Context, emp *entity.Employee) error
}
