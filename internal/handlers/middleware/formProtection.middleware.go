package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
)

// CookieEncryption encrypts all cookies (including the post-redirect flash
// cookie) with the configured secret key.
func (m *Middleware) CookieEncryption() fiber.Handler {
	return encryptcookie.New(encryptcookie.Config{
		Key: m.Config.SecretKey,
	})
}

// FormProtection validates the CSRF token the form renderer injects into
// every submitted form.
func (m *Middleware) FormProtection() fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "csrf_token",
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		Expiration:     time.Hour,
	})
}
