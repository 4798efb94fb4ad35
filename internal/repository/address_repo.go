package repository

import (
	"context"
	"errors"

	"storefront/internal/model"

	"gorm.io/gorm"
)

// AddressRepository is the persistence gateway for user addresses.
type AddressRepository interface {
	FindByUserID(ctx context.Context, userID uint) ([]model.Address, error)
	FindByID(ctx context.Context, id uint) (*model.Address, error)
	Create(ctx context.Context, a *model.Address) error
	Update(ctx context.Context, a *model.Address) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type addressRepository struct{ db *gorm.DB }

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) FindByUserID(ctx context.Context, userID uint) ([]model.Address, error) {
	var list []model.Address
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&list).Error
	return list, err
}

func (r *addressRepository) FindByID(ctx context.Context, id uint) (*model.Address, error) {
	var a model.Address
	err := r.db.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *addressRepository) Create(ctx context.Context, a *model.Address) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *addressRepository) Update(ctx context.Context, a *model.Address) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *addressRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Address{}, id)
	return res.RowsAffected > 0, res.Error
}
