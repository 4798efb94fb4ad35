package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/repository"
)

type ProductRepository struct {
	mu       sync.RWMutex
	products []model.Product
	nextID   uint
}

func NewProductRepository(seed ...model.Product) *ProductRepository {
	r := &ProductRepository{nextID: 1}
	for _, p := range seed {
		p.ID = r.nextID
		r.nextID++
		r.products = append(r.products, p)
	}
	return r
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) FindAll(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.live(), nil
}

// live returns a copy of all non-deleted products in insertion order.
// Callers must hold at least a read lock.
func (r *ProductRepository) live() []model.Product {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if !p.DeletedAt.Valid {
			out = append(out, p)
		}
	}
	return out
}

func (r *ProductRepository) FindByID(_ context.Context, id uint) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id && !p.DeletedAt.Valid {
			copy := p
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *ProductRepository) Create(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = now
	p.UpdatedAt = now
	r.products = append(r.products, *p)
	return nil
}

func (r *ProductRepository) Update(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == p.ID && !r.products[i].DeletedAt.Valid {
			p.UpdatedAt = time.Now()
			r.products[i] = *p
			return nil
		}
	}
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id && !r.products[i].DeletedAt.Valid {
			r.products[i].DeletedAt.Time = time.Now()
			r.products[i].DeletedAt.Valid = true
			return true, nil
		}
	}
	return false, nil
}

// Search narrows the candidate set one present filter field at a time.
// Each predicate keeps the surviving records in their original relative
// order, so the result is a stable subsequence of the collection.
func (r *ProductRepository) Search(_ context.Context, filter dto.ProductFilter) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := r.live()

	if filter.Name != "" {
		filtered = keep(filtered, func(p model.Product) bool {
			return containsFold(p.Name, filter.Name)
		})
	}
	if filter.Description != "" {
		filtered = keep(filtered, func(p model.Product) bool {
			return containsFold(p.Description, filter.Description)
		})
	}
	if filter.SubcategoryID != 0 {
		filtered = keep(filtered, func(p model.Product) bool {
			return p.SubcategoryID == filter.SubcategoryID
		})
	}
	if filter.SectionID != 0 {
		filtered = keep(filtered, func(p model.Product) bool {
			return p.SectionID == filter.SectionID
		})
	}
	if filter.BrandID != 0 {
		filtered = keep(filtered, func(p model.Product) bool {
			return p.BrandID == filter.BrandID
		})
	}
	if filter.CategoryID != 0 {
		filtered = keep(filtered, func(p model.Product) bool {
			return p.CategoryID == filter.CategoryID
		})
	}
	return filtered, nil
}

func (r *ProductRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, p := range r.products {
		if !p.DeletedAt.Valid {
			n++
		}
	}
	return n, nil
}

func keep(in []model.Product, pred func(model.Product) bool) []model.Product {
	out := in[:0:0]
	for _, p := range in {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
