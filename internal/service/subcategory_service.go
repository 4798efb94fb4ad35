package service

import (
	"context"

	"storefront/internal/apierror"
	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// SubCategoryService defines business operations for subcategories. Writes
// verify that the parent category exists and is not deleted.
type SubCategoryService interface {
	GetAll(ctx context.Context) ([]dto.SubCategoryResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.SubCategoryResponse, error)
	GetByCategory(ctx context.Context, categoryID uint) ([]dto.SubCategoryResponse, error)
	Create(ctx context.Context, req dto.CreateSubCategoryRequest) (*dto.SubCategoryResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateSubCategoryRequest) (*dto.SubCategoryResponse, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type subCategoryService struct {
	repo         repository.SubCategoryRepository
	categoryRepo repository.CategoryRepository
}

func NewSubCategoryService(repo repository.SubCategoryRepository, categoryRepo repository.CategoryRepository) SubCategoryService {
	return &subCategoryService{repo: repo, categoryRepo: categoryRepo}
}

func mapSubCategory(s model.SubCategory) dto.SubCategoryResponse {
	return dto.SubCategoryResponse{ID: s.ID, Name: s.Name, Image: s.Image, CategoryID: s.CategoryID}
}

func (s *subCategoryService) GetAll(ctx context.Context) ([]dto.SubCategoryResponse, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SubCategoryResponse, 0, len(list))
	for _, sc := range list {
		result = append(result, mapSubCategory(sc))
	}
	return result, nil
}

func (s *subCategoryService) fetch(ctx context.Context, id uint) (*model.SubCategory, error) {
	if id == 0 {
		return nil, apierror.BadRequest("invalid subcategory id")
	}
	sc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, apierror.NotFound("subcategory not found")
	}
	return sc, nil
}

func (s *subCategoryService) GetByID(ctx context.Context, id uint) (*dto.SubCategoryResponse, error) {
	sc, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapSubCategory(*sc)
	return &resp, nil
}

func (s *subCategoryService) GetByCategory(ctx context.Context, categoryID uint) ([]dto.SubCategoryResponse, error) {
	if err := s.checkCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	list, err := s.repo.FindByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SubCategoryResponse, 0, len(list))
	for _, sc := range list {
		result = append(result, mapSubCategory(sc))
	}
	return result, nil
}

// checkCategory enforces the foreign-key invariant: the parent category must
// exist and not be soft deleted at write time.
func (s *subCategoryService) checkCategory(ctx context.Context, categoryID uint) error {
	if categoryID == 0 {
		return apierror.BadRequest("category id is required")
	}
	c, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if c == nil {
		return apierror.NotFound("category not found")
	}
	return nil
}

func (s *subCategoryService) Create(ctx context.Context, req dto.CreateSubCategoryRequest) (*dto.SubCategoryResponse, error) {
	if req.Name == "" || req.Image == "" {
		return nil, apierror.BadRequest("subcategory name and image are required")
	}
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	sc := &model.SubCategory{Name: req.Name, Image: req.Image, CategoryID: req.CategoryID}
	if err := s.repo.Create(ctx, sc); err != nil {
		return nil, err
	}
	resp := mapSubCategory(*sc)
	return &resp, nil
}

func (s *subCategoryService) Update(ctx context.Context, id uint, req dto.UpdateSubCategoryRequest) (*dto.SubCategoryResponse, error) {
	sc, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, apierror.BadRequest("subcategory name cannot be empty")
		}
		sc.Name = *req.Name
	}
	if req.Image != nil {
		if *req.Image == "" {
			return nil, apierror.BadRequest("subcategory image cannot be empty")
		}
		sc.Image = *req.Image
	}
	if req.CategoryID != nil {
		if err := s.checkCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		sc.CategoryID = *req.CategoryID
	}
	if err := s.repo.Update(ctx, sc); err != nil {
		return nil, err
	}
	resp := mapSubCategory(*sc)
	return &resp, nil
}

func (s *subCategoryService) Delete(ctx context.Context, id uint) (bool, error) {
	if _, err := s.fetch(ctx, id); err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, id)
}
