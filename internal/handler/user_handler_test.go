package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/edusign/edusign-api/internal/dto"
)

func TestUserSignupAndList(t *testing.T) {
	env := newTestEnv(t)

	created := env.request(t, http.MethodPost, "/users", dto.UserCreateRequest{Email: "a@x.com", Name: "Alice"}, "")
	require.Equal(t, fiber.StatusCreated, created.StatusCode)

	unauthenticated := env.request(t, http.MethodGet, "/users", nil, "")
	require.Equal(t, fiber.StatusUnauthorized, unauthenticated.StatusCode)

	resp := env.request(t, http.MethodGet, "/users?email=a@x.com", nil, "a@x.com")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed []dto.UserResponse
	payload := decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(payload.Data, &listed))
	require.Len(t, listed, 1)
	require.Equal(t, "Alice", listed[0].Name)
}

func TestGoogleSignupConflict(t *testing.T) {
	env := newTestEnv(t)

	payload := dto.UserCreateRequest{Email: "a@x.com", Name: "Alice"}

	first := env.request(t, http.MethodPost, "/users/google", payload, "")
	require.Equal(t, fiber.StatusCreated, first.StatusCode)

	second := env.request(t, http.MethodPost, "/users/google", payload, "")
	require.Equal(t, fiber.StatusBadRequest, second.StatusCode)

	resp := env.request(t, http.MethodGet, "/users?email=a@x.com", nil, "a@x.com")
	var listed []dto.UserResponse
	body := decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(body.Data, &listed))
	require.Len(t, listed, 1)
	require.True(t, listed[0].GoogleAuth)
}

func TestUserSignupValidation(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/users", dto.UserCreateRequest{Email: "nope"}, "")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
