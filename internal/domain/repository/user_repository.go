package repository

import (
	"context"

	"github.com/openmes/mes-api/internal/domain/entity"
)

// UserRepository defines the persistence port for User accounts.
// Lookups return (nil, nil) when the record does not exist.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	ExistsWithRole(ctx context.Context, role string) (bool, error)
	UpdateRoles(ctx context.Context, id string, roles []string) error
}
