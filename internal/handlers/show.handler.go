package handlers

import (
	"showbill/internal/app"
	showController "showbill/internal/controllers/shows"
	"showbill/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type ShowHandler struct {
	Handler
	controller showController.ShowControllerInterface
}

func NewShowHandler(app app.App, router fiber.Router) *ShowHandler {
	log := logger.New("handlers").File("show_handler")
	return &ShowHandler{
		controller: app.ShowController,
		Handler: Handler{
			log:    log,
			router: router,
		},
	}
}

func (h *ShowHandler) Register() {
	shows := h.router.Group("/shows")

	shows.Get("/", h.list)
	shows.Get("/create", h.createForm)
	shows.Post("/create", h.create)
}

func (h *ShowHandler) list(c *fiber.Ctx) error {
	shows, err := h.controller.List(c.UserContext())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"page": "shows", "shows": shows})
}

func (h *ShowHandler) createForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "new_show", "form": types.ShowForm{}})
}

func (h *ShowHandler) create(c *fiber.Ctx) error {
	var form types.ShowForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	if errs := form.Validate(); errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"page":   "new_show",
			"form":   form,
			"errors": errs,
			"flash":  errs.Messages(),
		})
	}

	if _, err := h.controller.Create(c.UserContext(), form); err != nil {
		return c.JSON(fiber.Map{
			"page":  "home",
			"flash": "An error occurred. Show could not be listed.",
		})
	}

	return c.JSON(fiber.Map{
		"page":  "home",
		"flash": "Show was successfully listed!",
	})
}
