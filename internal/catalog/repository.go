package catalog

import (
	"context"
	"sync"
)

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	// AdjustStock adds delta to the product's stock, clamping at zero, in one
	// step so concurrent adjustments never overwrite each other.
	AdjustStock(ctx context.Context, id string, delta int) (*Product, error)
}

// memoryRepository keeps the catalog in process memory, in seed order.
type memoryRepository struct {
	mu       sync.RWMutex
	products []Product
	index    map[string]int
}

func NewMemoryRepository(products []Product) Repository {
	r := &memoryRepository{
		products: make([]Product, len(products)),
		index:    make(map[string]int, len(products)),
	}
	copy(r.products, products)
	for i, p := range r.products {
		r.index[p.ID] = i
	}
	return r
}

func (r *memoryRepository) List(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}

func (r *memoryRepository) AdjustStock(ctx context.Context, id string, delta int) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	r.products[i].Stock = max(0, r.products[i].Stock+delta)
	p := r.products[i]
	return &p, nil
}
