// Package memory provides in-memory implementations of the persistence
// gateways. They honor the same contracts as the GORM implementations
// (soft delete filtered on every read, absent records reported as (nil, nil),
// insertion-order listing) so services behave identically over either
// backend. Used by the unit tests and as a storage backend for local runs.
package memory

import (
	"context"
	"sync"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"
)

type BrandRepository struct {
	mu     sync.RWMutex
	brands []model.Brand
	nextID uint
}

func NewBrandRepository(seed ...model.Brand) *BrandRepository {
	r := &BrandRepository{nextID: 1}
	for _, b := range seed {
		b.ID = r.nextID
		r.nextID++
		r.brands = append(r.brands, b)
	}
	return r
}

var _ repository.BrandRepository = (*BrandRepository)(nil)

func (r *BrandRepository) FindAll(_ context.Context) ([]model.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Brand, 0, len(r.brands))
	for _, b := range r.brands {
		if !b.DeletedAt.Valid {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BrandRepository) FindByID(_ context.Context, id uint) (*model.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.brands {
		if b.ID == id && !b.DeletedAt.Valid {
			copy := b
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *BrandRepository) Create(_ context.Context, b *model.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	b.ID = r.nextID
	r.nextID++
	b.CreatedAt = now
	b.UpdatedAt = now
	r.brands = append(r.brands, *b)
	return nil
}

func (r *BrandRepository) Update(_ context.Context, b *model.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.brands {
		if r.brands[i].ID == b.ID && !r.brands[i].DeletedAt.Valid {
			b.UpdatedAt = time.Now()
			r.brands[i] = *b
			return nil
		}
	}
	return nil
}

func (r *BrandRepository) Delete(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.brands {
		if r.brands[i].ID == id && !r.brands[i].DeletedAt.Valid {
			r.brands[i].DeletedAt.Time = time.Now()
			r.brands[i].DeletedAt.Valid = true
			return true, nil
		}
	}
	return false, nil
}
