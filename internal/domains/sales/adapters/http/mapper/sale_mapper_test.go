package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	saledomain "github.com/Apurer/store-manager/internal/domains/sales/domain"
)

func TestMutationItemPreservesPresence(t *testing.T) {
	var items []MutationItem
	require.NoError(t, json.Unmarshal([]byte(`[{"productId":3},{"quantity":0}]`), &items))

	require.NotNil(t, items[0].ProductID)
	require.Nil(t, items[0].Quantity)
	require.Nil(t, items[1].ProductID)
	require.NotNil(t, items[1].Quantity)
	require.Equal(t, 0, *items[1].Quantity)
}

func TestToDomainItemsKeepsOrder(t *testing.T) {
	first, second := int64(7), int64(2)
	one, four := 1, 4
	got := ToDomainItems([]MutationItem{
		{ProductID: &first, Quantity: &four},
		{ProductID: &second, Quantity: &one},
	})
	require.Equal(t, []saledomain.ItemInput{
		{ProductID: 7, Quantity: 4},
		{ProductID: 2, Quantity: 1},
	}, got)
}

func TestRegistrationJSONShape(t *testing.T) {
	payload, err := json.Marshal(FromDomainRegistration(&saledomain.Registration{
		ID:        9,
		ItemsSold: []saledomain.ItemInput{{ProductID: 1, Quantity: 2}},
	}))
	require.NoError(t, err)
	require.JSONEq(t, `{"id":9,"itemsSold":[{"productId":1,"quantity":2}]}`, string(payload))

	empty, err := json.Marshal(FromDomainUpdate(&saledomain.Update{SaleID: 4}))
	require.NoError(t, err)
	require.JSONEq(t, `{"saleId":4,"itemsUpdated":[]}`, string(empty))
}

func TestListingJSONShape(t *testing.T) {
	date := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	payload, err := json.Marshal(FromDomainListing([]saledomain.ListingRow{{SaleID: 1, Date: date, ProductID: 2, Quantity: 3}}))
	require.NoError(t, err)
	require.JSONEq(t, `[{"saleId":1,"date":"2024-03-01T10:00:00Z","productId":2,"quantity":3}]`, string(payload))
}
