package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Apurer/store-manager/internal/domains/products/domain"
	"github.com/Apurer/store-manager/internal/domains/products/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory product persistence adapter.
type Repository struct {
	mu       sync.RWMutex
	products map[int64]*domain.Product
	nextID   int64
}

func NewRepository() *Repository {
	return &Repository{products: map[int64]*domain.Product{}}
}

// Seed stores products with their ids preserved. Used by tests and contract
// provider states.
func (r *Repository) Seed(products ...domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, product := range products {
		clone := product
		r.products[clone.ID] = &clone
		if clone.ID > r.nextID {
			r.nextID = clone.ID
		}
	}
}

// Reset drops every product and restarts id assignment.
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = map[int64]*domain.Product{}
	r.nextID = 0
}

func (r *Repository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(*domain.Product) bool { return true }), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *Repository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.products[id]
	return ok, nil
}

func (r *Repository) CountByIDs(_ context.Context, ids []int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[int64]struct{}, len(ids))
	var count int64
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := r.products[id]; ok {
			count++
		}
	}
	return count, nil
}

func (r *Repository) Create(_ context.Context, name string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	product := &domain.Product{ID: r.nextID, Name: name}
	r.products[product.ID] = product
	clone := *product
	return &clone, nil
}

func (r *Repository) UpdateName(_ context.Context, id int64, name string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	product.Rename(name)
	clone := *product
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *Repository) SearchByName(_ context.Context, term string) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(p *domain.Product) bool { return p.MatchesName(term) }), nil
}

// sorted returns clones of the matching products ordered by id. Callers hold the lock.
func (r *Repository) sorted(match func(*domain.Product) bool) []*domain.Product {
	list := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		if !match(product) {
			continue
		}
		clone := *product
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}
