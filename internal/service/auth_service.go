package service

import (
	"context"
	"time"

	"storefront/internal/apierror"
	"storefront/internal/config"
	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and refreshes JWT access tokens and handles account
// validation. Login is rejected for locked and unvalidated accounts.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	Validate(ctx context.Context, token string) (*dto.UserResponse, error)
}

type authService struct {
	repo     repository.UserRepository
	roleRepo repository.RoleRepository
	cfg      *config.Config
}

func NewAuthService(repo repository.UserRepository, roleRepo repository.RoleRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, roleRepo: roleRepo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apierror.BadRequest("email and password are required")
	}
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierror.Unauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized("invalid credentials")
	}
	if user.Locked {
		return nil, apierror.Forbidden("account is locked")
	}
	if !user.Validated {
		return nil, apierror.Forbidden("account is not validated")
	}
	return s.buildLoginResponse(ctx, user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apierror.Unauthorized("refresh token invalid or expired")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apierror.Unauthorized("malformed token")
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID <= 0 {
		return nil, apierror.Unauthorized("malformed token")
	}

	user, err := s.repo.FindByID(ctx, uint(rawID))
	if err != nil {
		return nil, err
	}
	if user == nil || user.Locked {
		return nil, apierror.Unauthorized("user not found or locked")
	}
	return s.buildLoginResponse(ctx, user)
}

// Validate confirms a pending account by its emailed token and clears it.
func (s *authService) Validate(ctx context.Context, token string) (*dto.UserResponse, error) {
	if token == "" {
		return nil, apierror.BadRequest("validation token is required")
	}
	user, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierror.NotFound("validation token not found")
	}
	user.Validated = true
	user.Token = nil
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := mapUser(*user)
	return &resp, nil
}

func (s *authService) buildLoginResponse(ctx context.Context, user *model.User) (*dto.LoginResponse, error) {
	roleName := ""
	if role, err := s.roleRepo.FindByID(ctx, user.RoleID); err == nil && role != nil {
		roleName = role.Name
	}

	accessToken, err := s.generateToken(user, roleName, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(user, roleName, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         mapUser(*user),
	}, nil
}

func (s *authService) generateToken(user *model.User, roleName string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    roleName,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
