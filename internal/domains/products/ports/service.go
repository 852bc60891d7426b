package ports

import (
	"context"

	"github.com/Apurer/store-manager/internal/domains/products/domain"
)

// Service exposes product use cases to adapters.
type Service interface {
	List(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Add(ctx context.Context, name string) (*domain.Product, error)
	Edit(ctx context.Context, id int64, name string) (*domain.Product, error)
	Remove(ctx context.Context, id int64) error
	SearchByName(ctx context.Context, term string) ([]*domain.Product, error)
}
