package admin

import (
	"context"
	"sync"
)

type Repository interface {
	ListSellers(ctx context.Context) ([]Seller, error)
	UpdateSeller(ctx context.Context, id string, fn func(*Seller) error) (*Seller, error)
	GetAudit(ctx context.Context, productID string) (Audit, bool)
	SaveAudit(ctx context.Context, a Audit) error
}

type memoryRepository struct {
	mu      sync.RWMutex
	sellers []Seller
	audits  map[string]Audit
}

func NewMemoryRepository(sellers []Seller) Repository {
	r := &memoryRepository{
		sellers: make([]Seller, len(sellers)),
		audits:  make(map[string]Audit),
	}
	copy(r.sellers, sellers)
	return r
}

func (r *memoryRepository) ListSellers(ctx context.Context) ([]Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Seller, len(r.sellers))
	copy(out, r.sellers)
	return out, nil
}

// UpdateSeller applies fn to a copy and keeps it only when fn succeeds.
func (r *memoryRepository) UpdateSeller(ctx context.Context, id string, fn func(*Seller) error) (*Seller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.sellers {
		if r.sellers[i].ID != id {
			continue
		}
		next := r.sellers[i]
		if err := fn(&next); err != nil {
			return nil, err
		}
		r.sellers[i] = next
		return &next, nil
	}
	return nil, ErrSellerNotFound
}

func (r *memoryRepository) GetAudit(ctx context.Context, productID string) (Audit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.audits[productID]
	return a, ok
}

func (r *memoryRepository) SaveAudit(ctx context.Context, a Audit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.audits[a.ProductID] = a
	return nil
}
