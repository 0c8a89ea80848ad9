package interfaces

import (
	"context"
	"tractus/internal/domain/entities"
)

// IUserRepository persists users and their salesperson profile.
//
// Lookups return a zero-value entity (empty ID) and nil error when nothing matches.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User, vendedor *entities.Vendedor) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
}

type IVendedorRepository interface {
	GetByID(ctx context.Context, id string) (entities.Vendedor, error)
	GetByUserID(ctx context.Context, userID string) (entities.Vendedor, error)
	List(ctx context.Context) ([]entities.Vendedor, error)
	Update(ctx context.Context, v entities.Vendedor) (entities.Vendedor, error)
}
