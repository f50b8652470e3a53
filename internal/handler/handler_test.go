package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/edusign/edusign-api/internal/config"
	"github.com/edusign/edusign-api/internal/handler"
	"github.com/edusign/edusign-api/internal/middleware"
	"github.com/edusign/edusign-api/internal/repository/memory"
	"github.com/edusign/edusign-api/internal/router"
	"github.com/edusign/edusign-api/internal/service"
	"github.com/edusign/edusign-api/internal/token"
)

type testEnv struct {
	app         *fiber.App
	users       *memory.UserRepository
	assignments *memory.AssignmentRepository
	submissions *memory.SubmissionRepository
	tokens      *token.Issuer
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.Config{AppName: "EduSign API", AppEnv: "test", TokenTTL: time.Hour}
	logger := zerolog.Nop()
	validate := validator.New(validator.WithRequiredStructEnabled())
	tokens := token.New("test-secret", time.Hour)

	users := memory.NewUserRepository()
	assignments := memory.NewAssignmentRepository()
	submissions := memory.NewSubmissionRepository()

	userService := service.NewUserService(users, validate, logger)
	assignmentService := service.NewAssignmentService(assignments, submissions, validate, logger)
	submissionService := service.NewSubmissionService(submissions, assignments, validate, logger)

	app := fiber.New()
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:       handler.NewAuthHandler(tokens, false, time.Hour, logger),
		UserHandler:       handler.NewUserHandler(userService, logger),
		AssignmentHandler: handler.NewAssignmentHandler(assignmentService, logger),
		SubmissionHandler: handler.NewSubmissionHandler(submissionService, logger),
		AuthMiddleware:    middleware.CookieAuth(tokens),
	})

	return &testEnv{
		app:         app,
		users:       users,
		assignments: assignments,
		submissions: submissions,
		tokens:      tokens,
	}
}

func (e *testEnv) request(t *testing.T, method, target string, body any, authEmail string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if authEmail != "" {
		signed, err := e.tokens.Issue(map[string]any{"email": authEmail})
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: signed})
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()

	var payload envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	return payload
}
