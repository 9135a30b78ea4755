package handlers

import (
	"fmt"

	"showbill/internal/app"
	venueController "showbill/internal/controllers/venues"
	"showbill/internal/repositories"
	"showbill/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type VenueHandler struct {
	Handler
	controller venueController.VenueControllerInterface
}

func NewVenueHandler(app app.App, router fiber.Router) *VenueHandler {
	log := logger.New("handlers").File("venue_handler")
	return &VenueHandler{
		controller: app.VenueController,
		Handler: Handler{
			log:    log,
			router: router,
		},
	}
}

func (h *VenueHandler) Register() {
	venues := h.router.Group("/venues")

	venues.Get("/", h.list)
	venues.Post("/search", h.search)
	venues.Get("/create", h.createForm)
	venues.Post("/create", h.create)
	venues.Get("/:id", h.get)
	venues.Get("/:id/edit", h.editForm)
	venues.Post("/:id/edit", h.edit)
	venues.Delete("/:id", h.delete)
}

func (h *VenueHandler) list(c *fiber.Ctx) error {
	areas, err := h.controller.ListAreas(c.UserContext())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"page": "venues", "areas": areas})
}

func (h *VenueHandler) search(c *fiber.Ctx) error {
	var form types.SearchForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	results, err := h.controller.Search(c.UserContext(), form.SearchTerm)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"page":        "search_venues",
		"results":     results,
		"search_term": form.SearchTerm,
	})
}

func (h *VenueHandler) get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	venue, err := h.controller.Get(c.UserContext(), id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"page": "show_venue", "venue": venue})
}

func (h *VenueHandler) createForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "new_venue", "form": types.VenueForm{}})
}

func (h *VenueHandler) create(c *fiber.Ctx) error {
	var form types.VenueForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	if errs := form.Validate(); errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"page":   "new_venue",
			"form":   form,
			"errors": errs,
			"flash":  errs.Messages(),
		})
	}

	venue, err := h.controller.Create(c.UserContext(), form)
	if err != nil {
		return c.JSON(fiber.Map{
			"page":  "home",
			"flash": fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name),
		})
	}

	return c.JSON(fiber.Map{
		"page":  "home",
		"flash": fmt.Sprintf("Venue %s was successfully listed!", venue.Name),
	})
}

func (h *VenueHandler) editForm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	form, err := h.controller.GetForm(c.UserContext(), id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"page": "edit_venue", "form": form, "venue_id": id})
}

func (h *VenueHandler) edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var form types.VenueForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	if errs := form.Validate(); errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"page":     "edit_venue",
			"form":     form,
			"venue_id": id,
			"errors":   errs,
			"flash":    errs.Messages(),
		})
	}

	if err := h.controller.Update(c.UserContext(), id, form); err != nil {
		if err == repositories.ErrNotFound {
			return fiber.ErrNotFound
		}
		setFlash(c, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		return c.Redirect(fmt.Sprintf("/venues/%d/edit", id), fiber.StatusSeeOther)
	}

	setFlash(c, fmt.Sprintf("Venue %s was successfully updated!", form.Name))
	return c.Redirect(fmt.Sprintf("/venues/%d", id), fiber.StatusSeeOther)
}

func (h *VenueHandler) delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := h.controller.Delete(c.UserContext(), id); err != nil {
		if err == repositories.ErrNotFound {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	setFlash(c, "Venue was successfully deleted!")
	return c.Redirect("/", fiber.StatusSeeOther)
}
