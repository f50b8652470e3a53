package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/edusign/edusign-api/internal/dto"
	"github.com/edusign/edusign-api/internal/models"
	"github.com/edusign/edusign-api/internal/repository"
)

func TestAssignmentCatalogIsPublic(t *testing.T) {
	env := newTestEnv(t)
	seedAssignment(t, env)

	resp := env.request(t, http.MethodGet, "/assignments", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed []dto.AssignmentResponse
	payload := decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(payload.Data, &listed))
	require.Len(t, listed, 1)
}

func TestAssignmentMutationsRequireAuth(t *testing.T) {
	env := newTestEnv(t)
	assignment := seedAssignment(t, env)

	for _, target := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/assignments/" + assignment.ID.Hex()},
		{http.MethodPost, "/assignments"},
		{http.MethodPut, "/assignments/" + assignment.ID.Hex()},
		{http.MethodDelete, "/assignments/" + assignment.ID.Hex()},
	} {
		resp := env.request(t, target.method, target.path, nil, "")
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", target.method, target.path)
	}
}

func TestAssignmentListFilterAndSearch(t *testing.T) {
	env := newTestEnv(t)

	seed := []models.Assignment{
		{Title: "Linear Algebra", Description: "matrices", Subject: "Math", Difficulty: "Hard", TotalMarks: 60},
		{Title: "Worksheet", Description: "intro to algebra", Subject: "Math", Difficulty: "Easy", TotalMarks: 20},
		{Title: "Cells", Description: "biology basics", Subject: "Science", Difficulty: "Easy", TotalMarks: 30},
	}
	for i := range seed {
		require.NoError(t, env.assignments.Create(context.Background(), &seed[i]))
	}

	var listed []dto.AssignmentResponse

	resp := env.request(t, http.MethodGet, "/assignments?difficulty=Easy", nil, "")
	payload := decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(payload.Data, &listed))
	require.Len(t, listed, 2)

	resp = env.request(t, http.MethodGet, "/assignments?search=ALGEBRA", nil, "")
	payload = decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(payload.Data, &listed))
	require.Len(t, listed, 2)

	resp = env.request(t, http.MethodGet, "/assignments?subject=Science&search=biology", nil, "")
	payload = decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(payload.Data, &listed))
	require.Len(t, listed, 1)

	resp = env.request(t, http.MethodGet, "/assignments?sort=asc", nil, "")
	payload = decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(payload.Data, &listed))
	require.Len(t, listed, 3)
	for i := 1; i < len(listed); i++ {
		require.LessOrEqual(t, listed[i-1].TotalMarks, listed[i].TotalMarks)
	}
}

func TestAssignmentCreateValidatesPayload(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/assignments", dto.AssignmentCreateRequest{
		Title: "Missing everything else",
	}, "creator@x.com")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAssignmentDeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	assignment := seedAssignment(t, env)

	created := env.request(t, http.MethodPost, "/submissions", dto.SubmissionCreateRequest{
		AssignmentID: assignment.ID.Hex(),
		UserEmail:    "a@x.com",
	}, "a@x.com")
	require.Equal(t, fiber.StatusCreated, created.StatusCode)

	resp := env.request(t, http.MethodDelete, "/assignments/"+assignment.ID.Hex(), nil, "creator@x.com")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	remaining, err := env.submissions.List(context.Background(), repository.SubmissionFilter{})
	require.NoError(t, err)
	require.Empty(t, remaining)

	missing := env.request(t, http.MethodGet, "/assignments/"+assignment.ID.Hex(), nil, "creator@x.com")
	require.Equal(t, fiber.StatusNotFound, missing.StatusCode)
}

func TestAssignmentGetMissingReturnsNotFound(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/assignments/aaaaaaaaaaaaaaaaaaaaaaaa", nil, "a@x.com")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
