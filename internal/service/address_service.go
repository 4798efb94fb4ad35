package service

import (
	"context"

	"storefront/internal/apierror"
	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// AddressService defines business operations for user shipping addresses.
type AddressService interface {
	GetByUser(ctx context.Context, userID uint) ([]dto.AddressResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.AddressResponse, error)
	Create(ctx context.Context, req dto.CreateAddressRequest) (*dto.AddressResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateAddressRequest) (*dto.AddressResponse, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type addressService struct {
	repo     repository.AddressRepository
	userRepo repository.UserRepository
}

func NewAddressService(repo repository.AddressRepository, userRepo repository.UserRepository) AddressService {
	return &addressService{repo: repo, userRepo: userRepo}
}

func mapAddress(a model.Address) dto.AddressResponse {
	return dto.AddressResponse{
		ID:         a.ID,
		Location:   a.Location,
		City:       a.City,
		Province:   a.Province,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		UserID:     a.UserID,
	}
}

func (s *addressService) GetByUser(ctx context.Context, userID uint) ([]dto.AddressResponse, error) {
	if userID == 0 {
		return nil, apierror.BadRequest("invalid user id")
	}
	list, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.AddressResponse, 0, len(list))
	for _, a := range list {
		result = append(result, mapAddress(a))
	}
	return result, nil
}

func (s *addressService) fetch(ctx context.Context, id uint) (*model.Address, error) {
	if id == 0 {
		return nil, apierror.BadRequest("invalid address id")
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apierror.NotFound("address not found")
	}
	return a, nil
}

func (s *addressService) GetByID(ctx context.Context, id uint) (*dto.AddressResponse, error) {
	a, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapAddress(*a)
	return &resp, nil
}

func (s *addressService) Create(ctx context.Context, req dto.CreateAddressRequest) (*dto.AddressResponse, error) {
	if req.Location == "" || req.City == "" || req.Province == "" || req.PostalCode == "" || req.Country == "" {
		return nil, apierror.BadRequest("all address fields are required")
	}
	if req.UserID == 0 {
		return nil, apierror.BadRequest("user id is required")
	}
	u, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apierror.NotFound("user not found")
	}

	a := &model.Address{
		Location:   req.Location,
		City:       req.City,
		Province:   req.Province,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		UserID:     req.UserID,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	resp := mapAddress(*a)
	return &resp, nil
}

func (s *addressService) Update(ctx context.Context, id uint, req dto.UpdateAddressRequest) (*dto.AddressResponse, error) {
	a, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Location != nil {
		if *req.Location == "" {
			return nil, apierror.BadRequest("address location cannot be empty")
		}
		a.Location = *req.Location
	}
	if req.City != nil {
		if *req.City == "" {
			return nil, apierror.BadRequest("address city cannot be empty")
		}
		a.City = *req.City
	}
	if req.Province != nil {
		if *req.Province == "" {
			return nil, apierror.BadRequest("address province cannot be empty")
		}
		a.Province = *req.Province
	}
	if req.PostalCode != nil {
		if *req.PostalCode == "" {
			return nil, apierror.BadRequest("address postal code cannot be empty")
		}
		a.PostalCode = *req.PostalCode
	}
	if req.Country != nil {
		if *req.Country == "" {
			return nil, apierror.BadRequest("address country cannot be empty")
		}
		a.Country = *req.Country
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	resp := mapAddress(*a)
	return &resp, nil
}

func (s *addressService) Delete(ctx context.Context, id uint) (bool, error) {
	if _, err := s.fetch(ctx, id); err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, id)
}
