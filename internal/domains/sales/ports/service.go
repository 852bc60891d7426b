package ports

import (
	"context"

	"github.com/Apurer/store-manager/internal/domains/sales/domain"
)

// Service exposes sale use cases to adapters.
type Service interface {
	List(ctx context.Context) ([]domain.ListingRow, error)
	GetByID(ctx context.Context, saleID int64) ([]domain.DetailRow, error)
	Add(ctx context.Context, items []domain.ItemInput) (*domain.Registration, error)
	Edit(ctx context.Context, saleID int64, items []domain.ItemInput) (*domain.Update, error)
	Remove(ctx context.Context, saleID int64) error
}
