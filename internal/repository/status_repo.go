package repository

import (
	"context"
	"errors"

	"storefront/internal/model"

	"gorm.io/gorm"
)

// StatusRepository is the read-mostly gateway for order statuses. Rows come
// from the seeder; the API only ever reads them.
type StatusRepository interface {
	FindAll(ctx context.Context) ([]model.Status, error)
	FindByID(ctx context.Context, id uint) (*model.Status, error)
	FindByName(ctx context.Context, name string) (*model.Status, error)
}

type statusRepository struct{ db *gorm.DB }

func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) FindAll(ctx context.Context) ([]model.Status, error) {
	var list []model.Status
	err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error
	return list, err
}

func (r *statusRepository) FindByID(ctx context.Context, id uint) (*model.Status, error) {
	var s model.Status
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *statusRepository) FindByName(ctx context.Context, name string) (*model.Status, error) {
	var s model.Status
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
