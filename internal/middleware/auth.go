package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/edusign/edusign-api/internal/utils"
)

// TokenVerifier validates a compact credential and returns its claims.
type TokenVerifier interface {
	Verify(token string) (jwt.MapClaims, error)
}

// Locals keys populated by CookieAuth for downstream handlers.
const (
	LocalsUserEmail  = "user_email"
	LocalsUserClaims = "user_claims"
)

// The client is told the same thing whether the cookie is missing or the
// token fails verification; the cause must not leak.
const unauthorizedMessage = "authentication required"

// CookieAuth returns a middleware that validates the JWT carried in the auth
// cookie and attaches the decoded identity to the request.
func CookieAuth(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(AuthCookieName)
		if tokenString == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, unauthorizedMessage)
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			return utils.SendError(c, fiber.StatusUnauthorized, unauthorizedMessage)
		}

		c.Locals(LocalsUserClaims, claims)
		if email, ok := claims["email"].(string); ok && email != "" {
			c.Locals(LocalsUserEmail, email)
		}

		return c.Next()
	}
}

// AuthenticatedEmail returns the email claim bound to the request, if any.
func AuthenticatedEmail(c *fiber.Ctx) string {
	if email, ok := c.Locals(LocalsUserEmail).(string); ok {
		return email
	}
	return ""
}
