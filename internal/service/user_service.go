package service

import (
	"context"

	"storefront/internal/apierror"
	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// UserService defines business operations for user accounts. Creation hashes
// the password, assigns a validation token, and enqueues the validation email.
type UserService interface {
	GetAll(ctx context.Context) ([]dto.UserResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.UserResponse, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type userService struct {
	repo       repository.UserRepository
	roleRepo   repository.RoleRepository
	dispatcher *worker.Dispatcher
}

func NewUserService(repo repository.UserRepository, roleRepo repository.RoleRepository, dispatcher *worker.Dispatcher) UserService {
	return &userService{repo: repo, roleRepo: roleRepo, dispatcher: dispatcher}
}

func mapUser(u model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Surname:   u.Surname,
		Email:     u.Email,
		Image:     u.Image,
		Locked:    u.Locked,
		Validated: u.Validated,
		RoleID:    u.RoleID,
	}
}

func (s *userService) GetAll(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		result = append(result, mapUser(u))
	}
	return result, nil
}

func (s *userService) fetch(ctx context.Context, id uint) (*model.User, error) {
	if id == 0 {
		return nil, apierror.BadRequest("invalid user id")
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apierror.NotFound("user not found")
	}
	return u, nil
}

func (s *userService) GetByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	u, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapUser(*u)
	return &resp, nil
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if req.Name == "" || req.Surname == "" || req.Email == "" || req.Password == "" {
		return nil, apierror.BadRequest("name, surname, email and password are required")
	}
	if req.RoleID == 0 {
		return nil, apierror.BadRequest("role id is required")
	}
	role, err := s.roleRepo.FindByID(ctx, req.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, apierror.NotFound("role not found")
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apierror.BadRequest("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	token := uuid.NewString()

	u := &model.User{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: string(hash),
		Image:    req.Image,
		Token:    &token,
		RoleID:   req.RoleID,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		payload := worker.EmailJobPayload{
			ToEmail: u.Email,
			Subject: "Confirm your account",
			Body:    "Welcome! Use this token to validate your account: " + token,
		}
		if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
			// Account creation already succeeded; the validation mail can be re-sent.
			log.Warn().Err(err).Str("email", u.Email).Msg("failed to enqueue validation email")
		}
	}

	resp := mapUser(*u)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, apierror.BadRequest("user name cannot be empty")
		}
		u.Name = *req.Name
	}
	if req.Surname != nil {
		if *req.Surname == "" {
			return nil, apierror.BadRequest("user surname cannot be empty")
		}
		u.Surname = *req.Surname
	}
	if req.Email != nil {
		if *req.Email == "" {
			return nil, apierror.BadRequest("user email cannot be empty")
		}
		if other, err := s.repo.FindByEmail(ctx, *req.Email); err != nil {
			return nil, err
		} else if other != nil && other.ID != id {
			return nil, apierror.BadRequest("email already registered")
		}
		u.Email = *req.Email
	}
	if req.Image != nil {
		u.Image = req.Image
	}
	if req.Locked != nil {
		u.Locked = *req.Locked
	}
	if req.RoleID != nil {
		role, err := s.roleRepo.FindByID(ctx, *req.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, apierror.NotFound("role not found")
		}
		u.RoleID = *req.RoleID
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	resp := mapUser(*u)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id uint) (bool, error) {
	if _, err := s.fetch(ctx, id); err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, id)
}
