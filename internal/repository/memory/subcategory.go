package memory

import (
	"context"
	"sync"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"
)

type SubCategoryRepository struct {
	mu            sync.RWMutex
	subcategories []model.SubCategory
	nextID        uint
}

func NewSubCategoryRepository(seed ...model.SubCategory) *SubCategoryRepository {
	r := &SubCategoryRepository{nextID: 1}
	for _, s := range seed {
		s.ID = r.nextID
		r.nextID++
		r.subcategories = append(r.subcategories, s)
	}
	return r
}

var _ repository.SubCategoryRepository = (*SubCategoryRepository)(nil)

func (r *SubCategoryRepository) FindAll(_ context.Context) ([]model.SubCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.SubCategory, 0, len(r.subcategories))
	for _, s := range r.subcategories {
		if !s.DeletedAt.Valid {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *SubCategoryRepository) FindByID(_ context.Context, id uint) (*model.SubCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.subcategories {
		if s.ID == id && !s.DeletedAt.Valid {
			copy := s
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *SubCategoryRepository) FindByCategoryID(_ context.Context, categoryID uint) ([]model.SubCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.SubCategory
	for _, s := range r.subcategories {
		if s.CategoryID == categoryID && !s.DeletedAt.Valid {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *SubCategoryRepository) Create(_ context.Context, s *model.SubCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	s.ID = r.nextID
	r.nextID++
	s.CreatedAt = now
	s.UpdatedAt = now
	r.subcategories = append(r.subcategories, *s)
	return nil
}

func (r *SubCategoryRepository) Update(_ context.Context, s *model.SubCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.subcategories {
		if r.subcategories[i].ID == s.ID && !r.subcategories[i].DeletedAt.Valid {
			s.UpdatedAt = time.Now()
			r.subcategories[i] = *s
			return nil
		}
	}
	return nil
}

func (r *SubCategoryRepository) Delete(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.subcategories {
		if r.subcategories[i].ID == id && !r.subcategories[i].DeletedAt.Valid {
			r.subcategories[i].DeletedAt.Time = time.Now()
			r.subcategories[i].DeletedAt.Valid = true
			return true, nil
		}
	}
	return false, nil
}
