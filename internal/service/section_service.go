package service

import (
	"context"

	"storefront/internal/apierror"
	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// SectionService defines business operations for storefront sections.
type SectionService interface {
	GetAll(ctx context.Context) ([]dto.SectionResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.SectionResponse, error)
	Create(ctx context.Context, req dto.CreateSectionRequest) (*dto.SectionResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateSectionRequest) (*dto.SectionResponse, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type sectionService struct {
	repo repository.SectionRepository
}

func NewSectionService(repo repository.SectionRepository) SectionService {
	return &sectionService{repo: repo}
}

func mapSection(s model.Section) dto.SectionResponse {
	return dto.SectionResponse{ID: s.ID, Name: s.Name}
}

func (s *sectionService) GetAll(ctx context.Context) ([]dto.SectionResponse, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SectionResponse, 0, len(list))
	for _, sec := range list {
		result = append(result, mapSection(sec))
	}
	return result, nil
}

func (s *sectionService) fetch(ctx context.Context, id uint) (*model.Section, error) {
	if id == 0 {
		return nil, apierror.BadRequest("invalid section id")
	}
	sec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sec == nil {
		return nil, apierror.NotFound("section not found")
	}
	return sec, nil
}

func (s *sectionService) GetByID(ctx context.Context, id uint) (*dto.SectionResponse, error) {
	sec, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapSection(*sec)
	return &resp, nil
}

func (s *sectionService) Create(ctx context.Context, req dto.CreateSectionRequest) (*dto.SectionResponse, error) {
	if req.Name == "" {
		return nil, apierror.BadRequest("section name is required")
	}
	sec := &model.Section{Name: req.Name}
	if err := s.repo.Create(ctx, sec); err != nil {
		return nil, err
	}
	resp := mapSection(*sec)
	return &resp, nil
}

func (s *sectionService) Update(ctx context.Context, id uint, req dto.UpdateSectionRequest) (*dto.SectionResponse, error) {
	sec, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, apierror.BadRequest("section name cannot be empty")
		}
		sec.Name = *req.Name
	}
	if err := s.repo.Update(ctx, sec); err != nil {
		return nil, err
	}
	resp := mapSection(*sec)
	return &resp, nil
}

func (s *sectionService) Delete(ctx context.Context, id uint) (bool, error) {
	if _, err := s.fetch(ctx, id); err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, id)
}
