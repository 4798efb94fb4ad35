package memory

import (
	"context"
	"sync"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"
)

type SectionRepository struct {
	mu       sync.RWMutex
	sections []model.Section
	nextID   uint
}

func NewSectionRepository(seed ...model.Section) *SectionRepository {
	r := &SectionRepository{nextID: 1}
	for _, s := range seed {
		s.ID = r.nextID
		r.nextID++
		r.sections = append(r.sections, s)
	}
	return r
}

var _ repository.SectionRepository = (*SectionRepository)(nil)

func (r *SectionRepository) FindAll(_ context.Context) ([]model.Section, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Section, 0, len(r.sections))
	for _, s := range r.sections {
		if !s.DeletedAt.Valid {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *SectionRepository) FindByID(_ context.Context, id uint) (*model.Section, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sections {
		if s.ID == id && !s.DeletedAt.Valid {
			copy := s
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *SectionRepository) Create(_ context.Context, s *model.Section) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	s.ID = r.nextID
	r.nextID++
	s.CreatedAt = now
	s.UpdatedAt = now
	r.sections = append(r.sections, *s)
	return nil
}

func (r *SectionRepository) Update(_ context.Context, s *model.Section) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sections {
		if r.sections[i].ID == s.ID && !r.sections[i].DeletedAt.Valid {
			s.UpdatedAt = time.Now()
			r.sections[i] = *s
			return nil
		}
	}
	return nil
}

func (r *SectionRepository) Delete(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sections {
		if r.sections[i].ID == id && !r.sections[i].DeletedAt.Valid {
			r.sections[i].DeletedAt.Time = time.Now()
			r.sections[i].DeletedAt.Valid = true
			return true, nil
		}
	}
	return false, nil
}
