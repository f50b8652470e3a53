package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/edusign/edusign-api/internal/middleware"
	"github.com/edusign/edusign-api/internal/token"
	"github.com/edusign/edusign-api/internal/utils"
)

// AuthHandler issues and clears the cookie-borne credential.
type AuthHandler struct {
	tokens     *token.Issuer
	production bool
	ttl        time.Duration
	logger     zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(tokens *token.Issuer, production bool, ttl time.Duration, logger zerolog.Logger) *AuthHandler {
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &AuthHandler{
		tokens:     tokens,
		production: production,
		ttl:        ttl,
		logger:     logger.With().Str("component", "auth_handler").Logger(),
	}
}

// IssueToken signs the caller-supplied claims and sets them into the auth cookie.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	claims := map[string]any{}
	if err := c.BodyParser(&claims); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	signed, err := h.tokens.Issue(claims)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to issue token")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	cookie := middleware.AuthCookie(signed, h.production, h.ttl)
	c.Cookie(&cookie)

	return utils.SendSuccess(c, "token issued", nil)
}

// Logout clears the auth cookie. Idempotent.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	cookie := middleware.ClearedAuthCookie(h.production)
	c.Cookie(&cookie)

	return utils.SendSuccess(c, "logged out", nil)
}
