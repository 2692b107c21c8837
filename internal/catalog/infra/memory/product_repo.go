package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/shoping-checkout/internal/catalog/app"
	"github.com/dwikikusuma/shoping-checkout/internal/catalog/domain"
	"github.com/google/uuid"
)

// ProductRepo keeps products for the life of the process.
type ProductRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]domain.Product
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{byID: make(map[string]domain.Product)}
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	id := p.ID()
	if id == "" {
		id = uuid.NewString()
	}

	stored, err := domain.NewProduct(id, p.Name(), p.UnitPrice())
	if err != nil {
		return domain.Product{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		r.order = append(r.order, id)
	}
	r.byID[id] = stored
	return stored, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
