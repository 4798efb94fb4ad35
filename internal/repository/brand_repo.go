package repository

import (
	"context"
	"errors"

	"storefront/internal/model"

	"gorm.io/gorm"
)

// BrandRepository is the persistence gateway for brands. Absent records are
// reported as (nil, nil), never as an error; the service layer owns the
// translation to a typed not-found failure.
type BrandRepository interface {
	FindAll(ctx context.Context) ([]model.Brand, error)
	FindByID(ctx context.Context, id uint) (*model.Brand, error)
	Create(ctx context.Context, b *model.Brand) error
	Update(ctx context.Context, b *model.Brand) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type brandRepository struct{ db *gorm.DB }

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) FindAll(ctx context.Context) ([]model.Brand, error) {
	var list []model.Brand
	err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error
	return list, err
}

func (r *brandRepository) FindByID(ctx context.Context, id uint) (*model.Brand, error) {
	var b model.Brand
	err := r.db.WithContext(ctx).First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *brandRepository) Create(ctx context.Context, b *model.Brand) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *brandRepository) Update(ctx context.Context, b *model.Brand) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *brandRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Brand{}, id)
	return res.RowsAffected > 0, res.Error
}
