package repository

import (
	"context"
	"errors"

	"storefront/internal/model"

	"gorm.io/gorm"
)

// ImageRepository is the persistence gateway for product images.
type ImageRepository interface {
	FindByProductID(ctx context.Context, productID uint) ([]model.Image, error)
	FindByID(ctx context.Context, id uint) (*model.Image, error)
	Create(ctx context.Context, img *model.Image) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type imageRepository struct{ db *gorm.DB }

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) FindByProductID(ctx context.Context, productID uint) ([]model.Image, error) {
	var list []model.Image
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id asc").Find(&list).Error
	return list, err
}

func (r *imageRepository) FindByID(ctx context.Context, id uint) (*model.Image, error) {
	var img model.Image
	err := r.db.WithContext(ctx).First(&img, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *imageRepository) Create(ctx context.Context, img *model.Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *imageRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Image{}, id)
	return res.RowsAffected > 0, res.Error
}
