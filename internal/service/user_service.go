package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/edusign/edusign-api/internal/dto"
	"github.com/edusign/edusign-api/internal/models"
	"github.com/edusign/edusign-api/internal/repository"
)

// ErrUserExists indicates an account with the same email already exists.
var ErrUserExists = errors.New("user already exists")

// UserService orchestrates account workflows.
type UserService interface {
	List(ctx context.Context, filter dto.UserFilter) ([]dto.UserResponse, error)
	Create(ctx context.Context, payload dto.UserCreateRequest) (dto.UserResponse, error)
	CreateGoogle(ctx context.Context, payload dto.UserCreateRequest) (dto.UserResponse, error)
}

type userService struct {
	users     repository.UserRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewUserService constructs a UserService instance.
func NewUserService(userRepo repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) UserService {
	return &userService{
		users:     userRepo,
		validator: validate,
		logger:    logger.With().Str("component", "user_service").Logger(),
		now:       time.Now,
	}
}

func (s *userService) List(ctx context.Context, filter dto.UserFilter) ([]dto.UserResponse, error) {
	users, err := s.users.List(ctx, repository.UserFilter{Email: filter.Email})
	if err != nil {
		return nil, err
	}

	return dto.NewUserResponseSlice(users), nil
}

func (s *userService) Create(ctx context.Context, payload dto.UserCreateRequest) (dto.UserResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, err
	}

	user := models.User{
		Email:     payload.Email,
		Name:      payload.Name,
		PhotoURL:  payload.PhotoURL,
		CreatedAt: s.now(),
	}

	if err := s.users.Create(ctx, &user); err != nil {
		return dto.UserResponse{}, err
	}

	s.logger.Info().Str("email", user.Email).Msg("user created")

	return dto.NewUserResponse(user), nil
}

func (s *userService) CreateGoogle(ctx context.Context, payload dto.UserCreateRequest) (dto.UserResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, err
	}

	_, err := s.users.GetByEmail(ctx, payload.Email)
	if err == nil {
		return dto.UserResponse{}, ErrUserExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return dto.UserResponse{}, err
	}

	user := models.User{
		Email:      payload.Email,
		Name:       payload.Name,
		PhotoURL:   payload.PhotoURL,
		GoogleAuth: true,
		CreatedAt:  s.now(),
	}

	if err := s.users.Create(ctx, &user); err != nil {
		return dto.UserResponse{}, err
	}

	s.logger.Info().Str("email", user.Email).Msg("google user created")

	return dto.NewUserResponse(user), nil
}
