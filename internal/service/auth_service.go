package service

import (
	"errors"
	"time"

	"go-stockflow/internal/model"
	"go-stockflow/internal/repository"
	"go-stockflow/pkg/jwt"
	"go-stockflow/pkg/validator"

	"go-stockflow/internal/apperr"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
)

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	Register(input RegisterInput) (*LoginResponse, error)
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type TokenValidationResponse struct {
	User model.UserResponse `json:"user"`
}

type authService struct {
	userRepo    repository.UserRepository
	tokenExpiry time.Duration
}

func NewAuthService(userRepo repository.UserRepository, tokenExpiry time.Duration) AuthService {
	return &authService{
		userRepo:    userRepo,
		tokenExpiry: tokenExpiry,
	}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	// 1. Find user by email
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// 2. Check if user is active
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	// 3. Verify password
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// 4. Generate JWT token carrying the role
	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, user.Role, s.tokenExpiry)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

// Register creates a staff account. Admin accounts are seeded or promoted out
// of band; the role cannot be chosen at registration.
func (s *authService) Register(input RegisterInput) (*LoginResponse, error) {
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, apperr.Validation("Name, email, and a password of at least 6 characters are required")
	}

	if existing, _ := s.userRepo.FindByEmail(input.Email); existing != nil {
		return nil, apperr.Validation("Email already registered")
	}

	user := &model.User{
		Email:    input.Email,
		Name:     input.Name,
		Role:     model.RoleStaff,
		IsActive: true,
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, user.Role, s.tokenExpiry)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	// 1. Validate JWT token
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	// 2. Find user by ID from token claims
	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// 3. Check if user is still active
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return &TokenValidationResponse{
		User: user.ToResponse(),
	}, nil
}
