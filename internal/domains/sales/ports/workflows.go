package ports

import (
	"context"

	"github.com/Apurer/store-manager/internal/domains/sales/domain"
)

// SaleRegistrar runs sale creation, durably when a workflow engine is available.
type SaleRegistrar interface {
	RegisterSale(ctx context.Context, items []domain.ItemInput) (*domain.Registration, error)
}
