package service

import (
	"context"

	"storefront/internal/apierror"
	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// BrandService defines business operations for brands.
type BrandService interface {
	GetAll(ctx context.Context) ([]dto.BrandResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.BrandResponse, error)
	Create(ctx context.Context, req dto.CreateBrandRequest) (*dto.BrandResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateBrandRequest) (*dto.BrandResponse, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type brandService struct {
	repo repository.BrandRepository
}

func NewBrandService(repo repository.BrandRepository) BrandService {
	return &brandService{repo: repo}
}

func mapBrand(b model.Brand) dto.BrandResponse {
	return dto.BrandResponse{ID: b.ID, Name: b.Name, Image: b.Image}
}

func (s *brandService) GetAll(ctx context.Context) ([]dto.BrandResponse, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		result = append(result, mapBrand(b))
	}
	return result, nil
}

// fetch asserts a well-formed id and an existing record; Update and Delete
// reuse it so every operation reports the same BadRequest/NotFound contract.
func (s *brandService) fetch(ctx context.Context, id uint) (*model.Brand, error) {
	if id == 0 {
		return nil, apierror.BadRequest("invalid brand id")
	}
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apierror.NotFound("brand not found")
	}
	return b, nil
}

func (s *brandService) GetByID(ctx context.Context, id uint) (*dto.BrandResponse, error) {
	b, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapBrand(*b)
	return &resp, nil
}

func (s *brandService) Create(ctx context.Context, req dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	if req.Name == "" || req.Image == "" {
		return nil, apierror.BadRequest("brand name and image are required")
	}
	b := &model.Brand{Name: req.Name, Image: req.Image}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	resp := mapBrand(*b)
	return &resp, nil
}

func (s *brandService) Update(ctx context.Context, id uint, req dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	b, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, apierror.BadRequest("brand name cannot be empty")
		}
		b.Name = *req.Name
	}
	if req.Image != nil {
		if *req.Image == "" {
			return nil, apierror.BadRequest("brand image cannot be empty")
		}
		b.Image = *req.Image
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	resp := mapBrand(*b)
	return &resp, nil
}

func (s *brandService) Delete(ctx context.Context, id uint) (bool, error) {
	if _, err := s.fetch(ctx, id); err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, id)
}
