package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// AuthCookieName is the cookie carrying the signed credential.
const AuthCookieName = "token"

// AuthCookie builds the auth cookie for a freshly issued token. Production
// deployments serve the frontend cross-site, so the cookie is Secure with
// SameSite=None there and lax-insecure in development.
func AuthCookie(token string, production bool, ttl time.Duration) fiber.Cookie {
	cookie := fiber.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   production,
		SameSite: fiber.CookieSameSiteStrictMode,
	}
	if production {
		cookie.SameSite = fiber.CookieSameSiteNoneMode
	}

	return cookie
}

// ClearedAuthCookie builds an expired auth cookie with the same attributes
// used when setting it, so browsers actually drop it.
func ClearedAuthCookie(production bool) fiber.Cookie {
	cookie := AuthCookie("", production, 0)
	cookie.Expires = time.Now().Add(-time.Hour)

	return cookie
}
