package handlers

import (
	"context"
	"net/http/httptest"
	"net/url"
	"testing"

	"showbill/internal/app"
	"showbill/internal/models"
	"showbill/internal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShowController struct {
	items   []types.ShowListItem
	created []types.ShowForm
}

func (f *fakeShowController) List(ctx context.Context) ([]types.ShowListItem, error) {
	return f.items, nil
}

func (f *fakeShowController) Create(
	ctx context.Context,
	form types.ShowForm,
) (*models.Show, error) {
	f.created = append(f.created, form)
	show, err := form.ToModel()
	if err != nil {
		return nil, err
	}
	return &show, nil
}

func newShowTestApp(controller *fakeShowController) *fiber.App {
	fiberApp := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	handler := NewShowHandler(app.App{ShowController: controller}, fiberApp)
	handler.Register()
	return fiberApp
}

func TestShowListing(t *testing.T) {
	controller := &fakeShowController{items: []types.ShowListItem{
		{
			VenueID:    5,
			VenueName:  "Park Square Live Music & Coffee",
			ArtistID:   10,
			ArtistName: "The Wild Sax Band",
			StartTime:  "Mon 06, 15, 2026 8:00PM",
		},
	}}
	fiberApp := newShowTestApp(controller)

	resp, err := fiberApp.Test(httptest.NewRequest(fiber.MethodGet, "/shows", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "shows", body["page"])
}

func TestShowCreateSuccess(t *testing.T) {
	controller := &fakeShowController{}
	fiberApp := newShowTestApp(controller)

	resp := postForm(t, fiberApp, "/shows/create", url.Values{
		"artist_id":  {"10"},
		"venue_id":   {"5"},
		"start_time": {"2026-06-15 20:00:00"},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Show was successfully listed!", body["flash"])
	require.Len(t, controller.created, 1)
	assert.Equal(t, 10, controller.created[0].ArtistID)
}

func TestShowCreateValidationFailure(t *testing.T) {
	controller := &fakeShowController{}
	fiberApp := newShowTestApp(controller)

	resp := postForm(t, fiberApp, "/shows/create", url.Values{
		"artist_id": {"10"},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Empty(t, controller.created)

	body := decodeBody(t, resp)
	assert.NotNil(t, body["errors"])
}
