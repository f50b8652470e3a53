package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edusign/edusign-api/internal/config"
	"github.com/edusign/edusign-api/internal/handler"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	AssignmentHandler *handler.AssignmentHandler
	SubmissionHandler *handler.SubmissionHandler
	AuthMiddleware    fiber.Handler
}

// Register wires the HTTP routes into the fiber application. Paths stay at
// the root so existing EduSign clients keep working.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/", handler.Home(cfg))
	app.Get("/health", handler.HealthCheck(cfg))

	// Use provided auth middleware, or a no-op if nil
	auth := deps.AuthMiddleware
	if auth == nil {
		auth = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AuthHandler != nil {
		app.Post("/jwt", deps.AuthHandler.IssueToken)
		app.Post("/users/logout", deps.AuthHandler.Logout)
	}

	if deps.UserHandler != nil {
		deps.UserHandler.Register(app.Group("/users"), auth)
	}

	if deps.AssignmentHandler != nil {
		deps.AssignmentHandler.Register(app.Group("/assignments"), auth)
	}

	if deps.SubmissionHandler != nil {
		deps.SubmissionHandler.Register(app.Group("/submissions"), auth)
	}
}
