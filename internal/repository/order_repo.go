package repository

import (
	"context"
	"errors"

	"storefront/internal/model"

	"gorm.io/gorm"
)

// OrderRepository is the persistence gateway for orders. Create persists the
// order together with its item lines in a single statement batch; no wider
// transaction is coordinated here.
type OrderRepository interface {
	FindAll(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	FindByUserID(ctx context.Context, userID uint) ([]model.Order, error)
	Create(ctx context.Context, o *model.Order) error
	Update(ctx context.Context, o *model.Order) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type orderRepository struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	var list []model.Order
	err := r.db.WithContext(ctx).Preload("Items").Order("id asc").Find(&list).Error
	return list, err
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").Preload("Status").Preload("User").
		First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID uint) ([]model.Order, error) {
	var list []model.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).Order("id asc").Find(&list).Error
	return list, err
}

func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepository) Update(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *orderRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Order{}, id)
	return res.RowsAffected > 0, res.Error
}
