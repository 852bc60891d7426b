package ports

import (
	"context"
	"errors"

	"github.com/Apurer/store-manager/internal/domains/sales/domain"
)

// ErrNotFound is returned by adapters when a sale vanished between the
// existence check and the operation that followed it.
var ErrNotFound = errors.New("sale not found")

// Repository persists sales and their line items.
type Repository interface {
	Exists(ctx context.Context, saleID int64) (bool, error)
	// Create stores a sale dated now plus one line item per input and returns
	// the new sale id.
	Create(ctx context.Context, items []domain.ItemInput) (int64, error)
	Detail(ctx context.Context, saleID int64) ([]domain.DetailRow, error)
	Listing(ctx context.Context) ([]domain.ListingRow, error)
	// UpdateQuantities sets the quantity of every line item whose product id
	// matches an input item. Matching ignores the owning sale, so a product
	// sold in several sales is updated in all of them.
	UpdateQuantities(ctx context.Context, items []domain.ItemInput) error
	// Delete removes the sale's line items, then the sale.
	Delete(ctx context.Context, saleID int64) error
}

// ProductCatalog answers product existence questions for the sales context.
type ProductCatalog interface {
	CountByIDs(ctx context.Context, ids []int64) (int64, error)
}
