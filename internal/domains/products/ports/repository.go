package ports

import (
	"context"
	"errors"

	"github.com/Apurer/store-manager/internal/domains/products/domain"
)

// ErrNotFound is returned by adapters when a row vanished between the
// existence check and the read or write that followed it.
var ErrNotFound = errors.New("product not found")

// Repository persists products.
type Repository interface {
	List(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// CountByIDs returns how many stored products have an id in ids. Duplicate
	// ids in the input are counted once.
	CountByIDs(ctx context.Context, ids []int64) (int64, error)
	Create(ctx context.Context, name string) (*domain.Product, error)
	UpdateName(ctx context.Context, id int64, name string) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	SearchByName(ctx context.Context, term string) ([]*domain.Product, error)
}
