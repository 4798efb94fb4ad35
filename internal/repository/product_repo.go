package repository

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/dto"
	"storefront/internal/model"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a contains pattern where the user input is matched
// literally: %, _ and \ in the input are escaped, so a search for "100%"
// does not become a wildcard.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// ProductRepository is the persistence gateway for products. On top of the
// uniform CRUD contract it exposes the catalog search and a live count.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uint) (bool, error)

	// Search applies every present filter field conjunctively and returns
	// matches in insertion (id) order.
	Search(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error)
	Count(ctx context.Context) (int64, error)
}

type productRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	var list []model.Product
	err := r.db.WithContext(ctx).Preload("Images").Order("id asc").Find(&list).Error
	return list, err
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Preload("Images").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepository) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *productRepository) Search(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.Name != "" {
		q = q.Where("name ILIKE ?", likePattern(filter.Name))
	}
	if filter.Description != "" {
		q = q.Where("description ILIKE ?", likePattern(filter.Description))
	}
	if filter.SubcategoryID != 0 {
		q = q.Where("subcategory_id = ?", filter.SubcategoryID)
	}
	if filter.SectionID != 0 {
		q = q.Where("section_id = ?", filter.SectionID)
	}
	if filter.BrandID != 0 {
		q = q.Where("brand_id = ?", filter.BrandID)
	}
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}

	var list []model.Product
	err := q.Order("id asc").Find(&list).Error
	return list, err
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error
	return n, err
}
