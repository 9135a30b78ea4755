package handlers

import (
	"fmt"

	"showbill/internal/app"
	artistController "showbill/internal/controllers/artists"
	"showbill/internal/repositories"
	"showbill/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type ArtistHandler struct {
	Handler
	controller artistController.ArtistControllerInterface
}

func NewArtistHandler(app app.App, router fiber.Router) *ArtistHandler {
	log := logger.New("handlers").File("artist_handler")
	return &ArtistHandler{
		controller: app.ArtistController,
		Handler: Handler{
			log:    log,
			router: router,
		},
	}
}

func (h *ArtistHandler) Register() {
	artists := h.router.Group("/artists")

	artists.Get("/", h.list)
	artists.Post("/search", h.search)
	artists.Get("/create", h.createForm)
	artists.Post("/create", h.create)
	artists.Get("/:id", h.get)
	artists.Get("/:id/edit", h.editForm)
	artists.Post("/:id/edit", h.edit)
}

func (h *ArtistHandler) list(c *fiber.Ctx) error {
	artists, err := h.controller.List(c.UserContext())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"page": "artists", "artists": artists})
}

func (h *ArtistHandler) search(c *fiber.Ctx) error {
	var form types.SearchForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	results, err := h.controller.Search(c.UserContext(), form.SearchTerm)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"page":        "search_artists",
		"results":     results,
		"search_term": form.SearchTerm,
	})
}

func (h *ArtistHandler) get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	artist, err := h.controller.Get(c.UserContext(), id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"page": "show_artist", "artist": artist})
}

func (h *ArtistHandler) createForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "new_artist", "form": types.ArtistForm{}})
}

func (h *ArtistHandler) create(c *fiber.Ctx) error {
	var form types.ArtistForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	if errs := form.Validate(); errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"page":   "new_artist",
			"form":   form,
			"errors": errs,
			"flash":  errs.Messages(),
		})
	}

	artist, err := h.controller.Create(c.UserContext(), form)
	if err != nil {
		return c.JSON(fiber.Map{
			"page":  "home",
			"flash": fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name),
		})
	}

	return c.JSON(fiber.Map{
		"page":  "home",
		"flash": fmt.Sprintf("Artist %s was successfully listed!", artist.Name),
	})
}

func (h *ArtistHandler) editForm(c *fiber.Ctx) error {
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

	return c.JSON(fiber.Map{"page": "edit_artist", "form": form, "artist_id": id})
}

func (h *ArtistHandler) edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var form types.ArtistForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	if errs := form.Validate(); errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"page":      "edit_artist",
			"form":      form,
			"artist_id": id,
			"errors":    errs,
			"flash":     errs.Messages(),
		})
	}

	if err := h.controller.Update(c.UserContext(), id, form); err != nil {
		if err == repositories.ErrNotFound {
			return fiber.ErrNotFound
		}
		setFlash(c, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		return c.Redirect(fmt.Sprintf("/artists/%d/edit", id), fiber.StatusSeeOther)
	}

	setFlash(c, fmt.Sprintf("Artist %s was successfully updated!", form.Name))
	return c.Redirect(fmt.Sprintf("/artists/%d", id), fiber.StatusSeeOther)
}
