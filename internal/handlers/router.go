package handlers

import (
	"showbill/internal/app"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	log    logger.Logger
	router fiber.Router
}

func Router(router fiber.Router, app *app.App) error {
	HomeHandler(router, app.Config)

	api := router.Group("/api")
	HealthHandler(api, app.Config)

	NewVenueHandler(*app, router).Register()
	NewArtistHandler(*app, router).Register()
	NewShowHandler(*app, router).Register()

	return nil
}

// setFlash stores a user-visible notification for the page rendered after a
// redirect. The cookie rides through the encryptcookie middleware.
func setFlash(c *fiber.Ctx, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     "flash",
		Value:    message,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
