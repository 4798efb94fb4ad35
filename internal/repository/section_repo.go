package repository

import (
	"context"
	"errors"

	"storefront/internal/model"

	"gorm.io/gorm"
)

// SectionRepository is the persistence gateway for storefront sections.
type SectionRepository interface {
	FindAll(ctx context.Context) ([]model.Section, error)
	FindByID(ctx context.Context, id uint) (*model.Section, error)
	Create(ctx context.Context, s *model.Section) error
	Update(ctx context.Context, s *model.Section) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type sectionRepository struct{ db *gorm.DB }

func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func (r *sectionRepository) FindAll(ctx context.Context) ([]model.Section, error) {
	var list []model.Section
	err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error
	return list, err
}

func (r *sectionRepository) FindByID(ctx context.Context, id uint) (*model.Section, error) {
	var s model.Section
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sectionRepository) Create(ctx context.Context, s *model.Section) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sectionRepository) Update(ctx context.Context, s *model.Section) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *sectionRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Section{}, id)
	return res.RowsAffected > 0, res.Error
}
