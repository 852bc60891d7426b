package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Apurer/store-manager/internal/domains/sales/domain"
	"github.com/Apurer/store-manager/internal/domains/sales/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory sale persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	sales  map[int64]domain.Sale
	items  []domain.LineItem
	nextID int64
	now    func() time.Time
}

func NewRepository() *Repository {
	return &Repository{sales: map[int64]domain.Sale{}, now: time.Now}
}

// WithClock overrides the clock used to date new sales.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.mu.Lock()
	defer r.mu.Unlock()
	if now != nil {
		r.now = now
	}
	return r
}

// Seed stores a sale and its line items with ids preserved.
func (r *Repository) Seed(sale domain.Sale, items ...domain.LineItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales[sale.ID] = sale
	if sale.ID > r.nextID {
		r.nextID = sale.ID
	}
	for _, item := range items {
		item.SaleID = sale.ID
		r.items = append(r.items, item)
	}
}

// Reset drops every sale and line item.
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = map[int64]domain.Sale{}
	r.items = nil
	r.nextID = 0
}

func (r *Repository) Exists(_ context.Context, saleID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sales[saleID]
	return ok, nil
}

func (r *Repository) Create(_ context.Context, items []domain.ItemInput) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	sale := domain.Sale{ID: r.nextID, Date: r.now()}
	r.sales[sale.ID] = sale
	for _, item := range items {
		r.items = append(r.items, domain.LineItem{SaleID: sale.ID, ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return sale.ID, nil
}

func (r *Repository) Detail(_ context.Context, saleID int64) ([]domain.DetailRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sale, ok := r.sales[saleID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return domain.BuildDetail(sale, r.items), nil
}

func (r *Repository) Listing(_ context.Context) ([]domain.ListingRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sales := make([]domain.Sale, 0, len(r.sales))
	for _, sale := range r.sales {
		sales = append(sales, sale)
	}
	return domain.BuildListing(sales, r.items), nil
}

func (r *Repository) UpdateQuantities(_ context.Context, items []domain.ItemInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, input := range items {
		for i := range r.items {
			if r.items[i].ProductID == input.ProductID {
				r.items[i].Quantity = input.Quantity
			}
		}
	}
	return nil
}

func (r *Repository) Delete(_ context.Context, saleID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sales[saleID]; !ok {
		return ports.ErrNotFound
	}
	kept := r.items[:0]
	for _, item := range r.items {
		if item.SaleID != saleID {
			kept = append(kept, item)
		}
	}
	r.items = kept
	delete(r.sales, saleID)
	return nil
}
