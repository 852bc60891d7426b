package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	productmemory "github.com/Apurer/store-manager/internal/domains/products/adapters/memory"
	productdomain "github.com/Apurer/store-manager/internal/domains/products/domain"
	salememory "github.com/Apurer/store-manager/internal/domains/sales/adapters/memory"
	"github.com/Apurer/store-manager/internal/domains/sales/domain"
	apierrors "github.com/Apurer/store-manager/internal/shared/errors"
)

var saleDate = time.Date(2022, 8, 17, 17, 19, 10, 0, time.UTC)

// spyRepo counts writes that reach the sale repository.
type spyRepo struct {
	*salememory.Repository
	creates int
	updates int
}

func (s *spyRepo) Create(ctx context.Context, items []domain.ItemInput) (int64, error) {
	s.creates++
	return s.Repository.Create(ctx, items)
}

func (s *spyRepo) UpdateQuantities(ctx context.Context, items []domain.ItemInput) error {
	s.updates++
	return s.Repository.UpdateQuantities(ctx, items)
}

func newFixture(t *testing.T) (*Service, *spyRepo) {
	t.Helper()
	products := productmemory.NewRepository()
	products.Seed(
		productdomain.Product{ID: 1, Name: "Martelo de Thor"},
		productdomain.Product{ID: 2, Name: "Traje de encolhimento"},
		productdomain.Product{ID: 3, Name: "Escudo do Capitão América"},
	)
	sales := salememory.NewRepository().WithClock(func() time.Time { return saleDate })
	sales.Seed(domain.Sale{ID: 1, Date: saleDate},
		domain.LineItem{ProductID: 1, Quantity: 5},
		domain.LineItem{ProductID: 2, Quantity: 10},
	)
	sales.Seed(domain.Sale{ID: 2, Date: saleDate},
		domain.LineItem{ProductID: 3, Quantity: 15},
	)
	repo := &spyRepo{Repository: sales}
	return NewService(repo, products), repo
}

func TestList_FlatListing(t *testing.T) {
	svc, _ := newFixture(t)

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.ListingRow{
		{SaleID: 1, Date: saleDate, ProductID: 1, Quantity: 5},
		{SaleID: 1, Date: saleDate, ProductID: 2, Quantity: 10},
		{SaleID: 2, Date: saleDate, ProductID: 3, Quantity: 15},
	}, rows)
}

func TestList_EmptyStorage(t *testing.T) {
	svc := NewService(salememory.NewRepository(), productmemory.NewRepository())

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestGetByID_ReturnsDetail(t *testing.T) {
	svc, _ := newFixture(t)

	rows, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.ElementsMatch(t, []domain.DetailRow{
		{Date: saleDate, ProductID: 1, Quantity: 5},
		{Date: saleDate, ProductID: 2, Quantity: 10},
	}, rows)
}

func TestGetByID_ExistingSaleWithoutItems(t *testing.T) {
	svc, repo := newFixture(t)
	repo.Seed(domain.Sale{ID: 3, Date: saleDate})

	rows, err := svc.GetByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, rows)
	require.Empty(t, rows)
}

func TestMissingSale_FailsWithSaleNotFound(t *testing.T) {
	svc, repo := newFixture(t)
	ctx := context.Background()

	for _, id := range []int64{0, 3, 99} {
		_, err := svc.GetByID(ctx, id)
		require.ErrorIs(t, err, apierrors.ErrSaleNotFound)

		_, err = svc.Edit(ctx, id, []domain.ItemInput{{ProductID: 1, Quantity: 1}})
		require.ErrorIs(t, err, apierrors.ErrSaleNotFound)

		err = svc.Remove(ctx, id)
		require.ErrorIs(t, err, apierrors.ErrSaleNotFound)
	}
	require.Zero(t, repo.updates)
}

func TestAdd_CreatesSaleAndEchoesItems(t *testing.T) {
	svc, repo := newFixture(t)
	ctx := context.Background()
	items := []domain.ItemInput{{ProductID: 1, Quantity: 1}, {ProductID: 2, Quantity: 5}}

	registration, err := svc.Add(ctx, items)
	require.NoError(t, err)
	require.Equal(t, &domain.Registration{ID: 3, ItemsSold: items}, registration)
	require.Equal(t, 1, repo.creates)

	rows, err := svc.GetByID(ctx, registration.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.DetailRow{
		{Date: saleDate, ProductID: 1, Quantity: 1},
		{Date: saleDate, ProductID: 2, Quantity: 5},
	}, rows)
}

func TestAdd_UnknownProductInsertsNothing(t *testing.T) {
	svc, repo := newFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, []domain.ItemInput{{ProductID: 1, Quantity: 5}, {ProductID: 99, Quantity: 1}})
	require.ErrorIs(t, err, apierrors.ErrProductNotFound)
	require.Zero(t, repo.creates)

	exists, err := repo.Exists(ctx, 3)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestAdd_DuplicateProductIDsFail(t *testing.T) {
	svc, repo := newFixture(t)

	_, err := svc.Add(context.Background(), []domain.ItemInput{{ProductID: 1, Quantity: 5}, {ProductID: 1, Quantity: 2}})
	require.ErrorIs(t, err, apierrors.ErrProductNotFound)
	require.Zero(t, repo.creates)
}

func TestAdd_NoItemsCreatesEmptySale(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	registration, err := svc.Add(ctx, []domain.ItemInput{})
	require.NoError(t, err)

	rows, err := svc.GetByID(ctx, registration.ID)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestEdit_UpdatesQuantities(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()
	items := []domain.ItemInput{{ProductID: 1, Quantity: 8}}

	update, err := svc.Edit(ctx, 1, items)
	require.NoError(t, err)
	require.Equal(t, &domain.Update{SaleID: 1, ItemsUpdated: items}, update)

	rows, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Contains(t, rows, domain.DetailRow{Date: saleDate, ProductID: 1, Quantity: 8})
}

func TestEdit_SaleCheckedBeforeProducts(t *testing.T) {
	svc, _ := newFixture(t)

	_, err := svc.Edit(context.Background(), 99, []domain.ItemInput{{ProductID: 99, Quantity: 1}})
	require.ErrorIs(t, err, apierrors.ErrSaleNotFound)
}

func TestEdit_UnknownProduct(t *testing.T) {
	svc, repo := newFixture(t)

	_, err := svc.Edit(context.Background(), 1, []domain.ItemInput{{ProductID: 99, Quantity: 1}})
	require.ErrorIs(t, err, apierrors.ErrProductNotFound)
	require.Zero(t, repo.updates)
}

func TestRemove_DeletesSaleAndItems(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Remove(ctx, 1))

	_, err := svc.GetByID(ctx, 1)
	require.ErrorIs(t, err, apierrors.ErrSaleNotFound)
	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

type brokenCatalog struct{ err error }

func (b brokenCatalog) CountByIDs(context.Context, []int64) (int64, error) { return 0, b.err }

func TestAdd_PropagatesCatalogFailure(t *testing.T) {
	storageErr := errors.New("connection refused")
	svc := NewService(salememory.NewRepository(), brokenCatalog{err: storageErr})

	_, err := svc.Add(context.Background(), []domain.ItemInput{{ProductID: 1, Quantity: 1}})
	require.ErrorIs(t, err, storageErr)
}
