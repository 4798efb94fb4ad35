package service

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"storefront/internal/apierror"
	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const productCacheTTL = 5 * time.Minute

// ProductService defines the business logic contract for catalog products.
type ProductService interface {
	GetAll(ctx context.Context) ([]dto.ProductResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error)
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) (bool, error)
	Search(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error)
	Count(ctx context.Context) (int64, error)
	AddImage(ctx context.Context, productID uint, req dto.AddImageRequest) (*dto.ImageResponse, error)
	RemoveImage(ctx context.Context, productID, imageID uint) error
}

type productService struct {
	repo            repository.ProductRepository
	imageRepo       repository.ImageRepository
	brandRepo       repository.BrandRepository
	categoryRepo    repository.CategoryRepository
	subcategoryRepo repository.SubCategoryRepository
	sectionRepo     repository.SectionRepository
	rdb             *redis.Client
}

func NewProductService(
	repo repository.ProductRepository,
	imageRepo repository.ImageRepository,
	brandRepo repository.BrandRepository,
	categoryRepo repository.CategoryRepository,
	subcategoryRepo repository.SubCategoryRepository,
	sectionRepo repository.SectionRepository,
	rdb *redis.Client,
) ProductService {
	return &productService{
		repo:            repo,
		imageRepo:       imageRepo,
		brandRepo:       brandRepo,
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		sectionRepo:     sectionRepo,
		rdb:             rdb,
	}
}

func mapProduct(p model.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		Discount:      p.Discount,
		Description:   p.Description,
		BrandID:       p.BrandID,
		CategoryID:    p.CategoryID,
		SubcategoryID: p.SubcategoryID,
		SectionID:     p.SectionID,
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, dto.ImageResponse{ID: img.ID, File: img.File})
	}
	return resp
}

// hasEmptyStringField walks every string field of req and reports whether
// any of them is the empty string. Product creation rejects the payload as
// a whole rather than checking a fixed list of field names.
func hasEmptyStringField(req interface{}) bool {
	v := reflect.ValueOf(req)
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			return true
		}
	}
	return false
}

func (s *productService) GetAll(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProduct(p))
	}
	return result, nil
}

func (s *productService) fetch(ctx context.Context, id uint) (*model.Product, error) {
	if id == 0 {
		return nil, apierror.BadRequest("invalid product id")
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apierror.NotFound("product not found")
	}
	return p, nil
}

func (s *productService) cacheKey(id uint) string { return fmt.Sprintf("product:%d", id) }

func (s *productService) GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	if id == 0 {
		return nil, apierror.BadRequest("invalid product id")
	}

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, s.cacheKey(id)).Result(); err == nil {
			var resp dto.ProductResponse
			if json.Unmarshal([]byte(raw), &resp) == nil {
				return &resp, nil
			}
		}
	}

	p, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapProduct(*p)

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, s.cacheKey(id), data, productCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Uint("product_id", id).Msg("product cache set failed")
			}
		}
	}
	return &resp, nil
}

func (s *productService) invalidate(ctx context.Context, id uint) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, s.cacheKey(id)).Err(); err != nil {
		log.Warn().Err(err).Uint("product_id", id).Msg("product cache invalidation failed")
	}
}

// checkReferences enforces the foreign-key invariant for every parent of a
// product. A missing parent is reported against the entity that is absent.
func (s *productService) checkReferences(ctx context.Context, brandID, categoryID, subcategoryID, sectionID uint) error {
	if brandID == 0 || categoryID == 0 || subcategoryID == 0 || sectionID == 0 {
		return apierror.BadRequest("brand, category, subcategory and section ids are required")
	}
	if b, err := s.brandRepo.FindByID(ctx, brandID); err != nil {
		return err
	} else if b == nil {
		return apierror.NotFound("brand not found")
	}
	if c, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return err
	} else if c == nil {
		return apierror.NotFound("category not found")
	}
	if sc, err := s.subcategoryRepo.FindByID(ctx, subcategoryID); err != nil {
		return err
	} else if sc == nil {
		return apierror.NotFound("subcategory not found")
	}
	if sec, err := s.sectionRepo.FindByID(ctx, sectionID); err != nil {
		return err
	} else if sec == nil {
		return apierror.NotFound("section not found")
	}
	return nil
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if hasEmptyStringField(req) {
		return nil, apierror.BadRequest("product payload has empty fields")
	}
	if !req.Price.IsPositive() {
		return nil, apierror.BadRequest("product price must be positive")
	}
	if err := s.checkReferences(ctx, req.BrandID, req.CategoryID, req.SubcategoryID, req.SectionID); err != nil {
		return nil, err
	}

	p := &model.Product{
		Name:          req.Name,
		Price:         req.Price,
		Discount:      req.Discount, // zero value when absent
		Description:   req.Description,
		BrandID:       req.BrandID,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		SectionID:     req.SectionID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apierror.BadRequest("product name cannot be empty")
		}
		p.Name = *req.Name
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, apierror.BadRequest("product description cannot be empty")
		}
		p.Description = *req.Description
	}
	if req.Price != nil {
		if !req.Price.IsPositive() {
			return nil, apierror.BadRequest("product price must be positive")
		}
		p.Price = *req.Price
	}
	if req.Discount != nil {
		p.Discount = *req.Discount
	}

	brandID, categoryID, subcategoryID, sectionID := p.BrandID, p.CategoryID, p.SubcategoryID, p.SectionID
	if req.BrandID != nil {
		brandID = *req.BrandID
	}
	if req.CategoryID != nil {
		categoryID = *req.CategoryID
	}
	if req.SubcategoryID != nil {
		subcategoryID = *req.SubcategoryID
	}
	if req.SectionID != nil {
		sectionID = *req.SectionID
	}
	if err := s.checkReferences(ctx, brandID, categoryID, subcategoryID, sectionID); err != nil {
		return nil, err
	}
	p.BrandID, p.CategoryID, p.SubcategoryID, p.SectionID = brandID, categoryID, subcategoryID, sectionID

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id uint) (bool, error) {
	if _, err := s.fetch(ctx, id); err != nil {
		return false, err
	}
	ok, err := s.repo.Delete(ctx, id)
	if err == nil {
		s.invalidate(ctx, id)
	}
	return ok, err
}

// Search applies the progressive conjunctive filter. An empty result is a
// valid outcome, never an error.
func (s *productService) Search(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error) {
	list, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProduct(p))
	}
	return result, nil
}

func (s *productService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *productService) AddImage(ctx context.Context, productID uint, req dto.AddImageRequest) (*dto.ImageResponse, error) {
	if req.File == "" {
		return nil, apierror.BadRequest("image file is required")
	}
	if _, err := s.fetch(ctx, productID); err != nil {
		return nil, err
	}
	img := &model.Image{File: req.File, ProductID: productID}
	if err := s.imageRepo.Create(ctx, img); err != nil {
		return nil, err
	}
	s.invalidate(ctx, productID)
	return &dto.ImageResponse{ID: img.ID, File: img.File}, nil
}

func (s *productService) RemoveImage(ctx context.Context, productID, imageID uint) error {
	if _, err := s.fetch(ctx, productID); err != nil {
		return err
	}
	img, err := s.imageRepo.FindByID(ctx, imageID)
	if err != nil {
		return err
	}
	if img == nil || img.ProductID != productID {
		return apierror.NotFound("image not found")
	}
	if _, err := s.imageRepo.Delete(ctx, imageID); err != nil {
		return err
	}
	s.invalidate(ctx, productID)
	return nil
}
