package memory

import (
	"context"
	"sync"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"
)

type CategoryRepository struct {
	mu         sync.RWMutex
	categories []model.Category
	nextID     uint
}

func NewCategoryRepository(seed ...model.Category) *CategoryRepository {
	r := &CategoryRepository{nextID: 1}
	for _, c := range seed {
		c.ID = r.nextID
		r.nextID++
		r.categories = append(r.categories, c)
	}
	return r
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

func (r *CategoryRepository) FindAll(_ context.Context) ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		if !c.DeletedAt.Valid {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CategoryRepository) FindByID(_ context.Context, id uint) (*model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.ID == id && !c.DeletedAt.Valid {
			copy := c
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepository) Create(_ context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	c.ID = r.nextID
	r.nextID++
	c.CreatedAt = now
	c.UpdatedAt = now
	r.categories = append(r.categories, *c)
	return nil
}

func (r *CategoryRepository) Update(_ context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID == c.ID && !r.categories[i].DeletedAt.Valid {
			c.UpdatedAt = time.Now()
			r.categories[i] = *c
			return nil
		}
	}
	return nil
}

func (r *CategoryRepository) Delete(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID == id && !r.categories[i].DeletedAt.Valid {
			r.categories[i].DeletedAt.Time = time.Now()
			r.categories[i].DeletedAt.Valid = true
			return true, nil
		}
	}
	return false, nil
}
