package service

import (
	"context"

	"storefront/internal/apierror"
	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// CategoryService defines business operations for product categories.
type CategoryService interface {
	GetAll(ctx context.Context) ([]dto.CategoryResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.CategoryResponse, error)
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func mapCategory(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name, Image: c.Image}
}

func (s *categoryService) GetAll(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCategory(c))
	}
	return result, nil
}

func (s *categoryService) fetch(ctx context.Context, id uint) (*model.Category, error) {
	if id == 0 {
		return nil, apierror.BadRequest("invalid category id")
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apierror.NotFound("category not found")
	}
	return c, nil
}

func (s *categoryService) GetByID(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	c, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapCategory(*c)
	return &resp, nil
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if req.Name == "" || req.Image == "" {
		return nil, apierror.BadRequest("category name and image are required")
	}
	c := &model.Category{Name: req.Name, Image: req.Image}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategory(*c)
	return &resp, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, apierror.BadRequest("category name cannot be empty")
		}
		c.Name = *req.Name
	}
	if req.Image != nil {
		if *req.Image == "" {
			return nil, apierror.BadRequest("category image cannot be empty")
		}
		c.Image = *req.Image
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategory(*c)
	return &resp, nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) (bool, error) {
	if _, err := s.fetch(ctx, id); err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, id)
}
