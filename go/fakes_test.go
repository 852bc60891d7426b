package storemanagerserver

import (
	"context"
	"sync"

	productdomain "github.com/Apurer/store-manager/internal/domains/products/domain"
	saledomain "github.com/Apurer/store-manager/internal/domains/sales/domain"
)

// fakeProductService records calls and returns canned results.
type fakeProductService struct {
	mu       sync.Mutex
	calls    []string
	products []*productdomain.Product
	err      error
}

func (f *fakeProductService) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeProductService) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeProductService) List(context.Context) ([]*productdomain.Product, error) {
	f.record("List")
	return f.products, f.err
}

func (f *fakeProductService) GetByID(_ context.Context, id int64) (*productdomain.Product, error) {
	f.record("GetByID")
	if f.err != nil {
		return nil, f.err
	}
	return &productdomain.Product{ID: id, Name: "Keyboard"}, nil
}

func (f *fakeProductService) Add(_ context.Context, name string) (*productdomain.Product, error) {
	f.record("Add")
	if f.err != nil {
		return nil, f.err
	}
	return &productdomain.Product{ID: 1, Name: name}, nil
}

func (f *fakeProductService) Edit(_ context.Context, id int64, name string) (*productdomain.Product, error) {
	f.record("Edit")
	if f.err != nil {
		return nil, f.err
	}
	return &productdomain.Product{ID: id, Name: name}, nil
}

func (f *fakeProductService) Remove(context.Context, int64) error {
	f.record("Remove")
	return f.err
}

func (f *fakeProductService) SearchByName(_ context.Context, term string) ([]*productdomain.Product, error) {
	f.record("SearchByName:" + term)
	return f.products, f.err
}

// fakeSaleService records calls and returns canned results.
type fakeSaleService struct {
	mu      sync.Mutex
	calls   []string
	items   []saledomain.ItemInput
	listing []saledomain.ListingRow
	detail  []saledomain.DetailRow
	err     error
}

func (f *fakeSaleService) record(call string, items []saledomain.ItemInput) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	if items != nil {
		f.items = items
	}
}

func (f *fakeSaleService) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeSaleService) List(context.Context) ([]saledomain.ListingRow, error) {
	f.record("List", nil)
	return f.listing, f.err
}

func (f *fakeSaleService) GetByID(context.Context, int64) ([]saledomain.DetailRow, error) {
	f.record("GetByID", nil)
	return f.detail, f.err
}

func (f *fakeSaleService) Add(_ context.Context, items []saledomain.ItemInput) (*saledomain.Registration, error) {
	f.record("Add", items)
	if f.err != nil {
		return nil, f.err
	}
	return &saledomain.Registration{ID: 1, ItemsSold: items}, nil
}

func (f *fakeSaleService) Edit(_ context.Context, saleID int64, items []saledomain.ItemInput) (*saledomain.Update, error) {
	f.record("Edit", items)
	if f.err != nil {
		return nil, f.err
	}
	return &saledomain.Update{SaleID: saleID, ItemsUpdated: items}, nil
}

func (f *fakeSaleService) Remove(context.Context, int64) error {
	f.record("Remove", nil)
	return f.err
}
