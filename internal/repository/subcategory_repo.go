package repository

import (
	"context"
	"errors"

	"storefront/internal/model"

	"gorm.io/gorm"
)

// SubCategoryRepository is the persistence gateway for subcategories.
type SubCategoryRepository interface {
	FindAll(ctx context.Context) ([]model.SubCategory, error)
	FindByID(ctx context.Context, id uint) (*model.SubCategory, error)
	FindByCategoryID(ctx context.Context, categoryID uint) ([]model.SubCategory, error)
	Create(ctx context.Context, s *model.SubCategory) error
	Update(ctx context.Context, s *model.SubCategory) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type subCategoryRepository struct{ db *gorm.DB }

func NewSubCategoryRepository(db *gorm.DB) SubCategoryRepository {
	return &subCategoryRepository{db: db}
}

func (r *subCategoryRepository) FindAll(ctx context.Context) ([]model.SubCategory, error) {
	var list []model.SubCategory
	err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error
	return list, err
}

func (r *subCategoryRepository) FindByID(ctx context.Context, id uint) (*model.SubCategory, error) {
	var s model.SubCategory
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *subCategoryRepository) FindByCategoryID(ctx context.Context, categoryID uint) ([]model.SubCategory, error) {
	var list []model.SubCategory
	err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id asc").Find(&list).Error
	return list, err
}

func (r *subCategoryRepository) Create(ctx context.Context, s *model.SubCategory) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *subCategoryRepository) Update(ctx context.Context, s *model.SubCategory) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *subCategoryRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.SubCategory{}, id)
	return res.RowsAffected > 0, res.Error
}
