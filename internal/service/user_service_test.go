package service_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/edusign/edusign-api/internal/dto"
	"github.com/edusign/edusign-api/internal/repository"
	"github.com/edusign/edusign-api/internal/repository/memory"
	"github.com/edusign/edusign-api/internal/service"
)

func TestUserServiceCreateGoogleRejectsDuplicate(t *testing.T) {
	users := memory.NewUserRepository()
	svc := service.NewUserService(users, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())

	payload := dto.UserCreateRequest{Email: "a@x.com", Name: "Alice"}

	first, err := svc.CreateGoogle(context.Background(), payload)
	require.NoError(t, err)
	require.True(t, first.GoogleAuth)

	_, err = svc.CreateGoogle(context.Background(), payload)
	require.ErrorIs(t, err, service.ErrUserExists)

	stored, err := users.List(context.Background(), repository.UserFilter{Email: "a@x.com"})
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

func TestUserServiceCreateSkipsDuplicateCheck(t *testing.T) {
	users := memory.NewUserRepository()
	svc := service.NewUserService(users, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())

	payload := dto.UserCreateRequest{Email: "a@x.com"}

	_, err := svc.Create(context.Background(), payload)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), payload)
	require.NoError(t, err)

	stored, err := users.List(context.Background(), repository.UserFilter{Email: "a@x.com"})
	require.NoError(t, err)
	require.Len(t, stored, 2)
}

func TestUserServiceCreateValidatesEmail(t *testing.T) {
	svc := service.NewUserService(memory.NewUserRepository(), validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())

	_, err := svc.Create(context.Background(), dto.UserCreateRequest{Email: "not-an-email"})
	require.Error(t, err)
}

func TestUserServiceListFiltersByEmail(t *testing.T) {
	users := memory.NewUserRepository()
	svc := service.NewUserService(users, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())

	_, err := svc.Create(context.Background(), dto.UserCreateRequest{Email: "a@x.com"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), dto.UserCreateRequest{Email: "b@x.com"})
	require.NoError(t, err)

	all, err := svc.List(context.Background(), dto.UserFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	filtered, err := svc.List(context.Background(), dto.UserFilter{Email: "b@x.com"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, "b@x.com", filtered[0].Email)
}
