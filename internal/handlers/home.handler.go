package handlers

import (
	"showbill/config"

	"github.com/gofiber/fiber/v2"
)

func HomeHandler(router fiber.Router, config config.Config) {
	router.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"page":    "home",
			"version": config.GeneralVersion,
		})
	})
}
