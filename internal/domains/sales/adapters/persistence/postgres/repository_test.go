package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/store-manager/internal/domains/sales/domain"
)

func TestToLineItemRecords(t *testing.T) {
	records := toLineItemRecords(4, []domain.ItemInput{{ProductID: 1, Quantity: 5}, {ProductID: 2, Quantity: 10}})

	assert.Equal(t, []saleProductRecord{
		{SaleID: 4, ProductID: 1, Quantity: 5},
		{SaleID: 4, ProductID: 2, Quantity: 10},
	}, records)
	assert.Equal(t, []domain.LineItem{
		{SaleID: 4, ProductID: 1, Quantity: 5},
		{SaleID: 4, ProductID: 2, Quantity: 10},
	}, toDomainItems(records))
}

func TestUnconfiguredRepository(t *testing.T) {
	repo := NewRepository(nil)
	ctx := context.Background()

	_, err := repo.Create(ctx, nil)
	require.Error(t, err)
	_, err = repo.Listing(ctx)
	require.Error(t, err)
	require.Error(t, repo.Delete(ctx, 1))
}
