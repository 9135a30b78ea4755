package handlers

import (
	"context"
	"net/http/httptest"
	"net/url"
	"testing"

	"showbill/internal/app"
	"showbill/internal/models"
	"showbill/internal/repositories"
	"showbill/internal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeArtistController struct {
	artists []types.ArtistListItem
	page    *types.ArtistPage
	updated map[int]types.ArtistForm
}

func (f *fakeArtistController) List(ctx context.Context) ([]types.ArtistListItem, error) {
	return f.artists, nil
}

func (f *fakeArtistController) Search(
	ctx context.Context,
	term string,
) (types.SearchResults, error) {
	return types.SearchResults{Count: 0, Data: []types.SearchResultItem{}}, nil
}

func (f *fakeArtistController) Get(ctx context.Context, id int) (*types.ArtistPage, error) {
	if f.page == nil || f.page.ID != id {
		return nil, repositories.ErrNotFound
	}
	return f.page, nil
}

func (f *fakeArtistController) GetForm(ctx context.Context, id int) (*types.ArtistForm, error) {
	if f.page == nil || f.page.ID != id {
		return nil, repositories.ErrNotFound
	}
	return &types.ArtistForm{Name: f.page.Name}, nil
}

func (f *fakeArtistController) Create(
	ctx context.Context,
	form types.ArtistForm,
) (*models.Artist, error) {
	artist := form.ToModel()
	artist.ID = 1
	return &artist, nil
}

func (f *fakeArtistController) Update(ctx context.Context, id int, form types.ArtistForm) error {
	if f.page == nil || f.page.ID != id {
		return repositories.ErrNotFound
	}
	if f.updated == nil {
		f.updated = make(map[int]types.ArtistForm)
	}
	f.updated[id] = form
	return nil
}

func newArtistTestApp(controller *fakeArtistController) *fiber.App {
	fiberApp := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	handler := NewArtistHandler(app.App{ArtistController: controller}, fiberApp)
	handler.Register()
	return fiberApp
}

func TestArtistDetailNotFound(t *testing.T) {
	fiberApp := newArtistTestApp(&fakeArtistController{})

	resp, err := fiberApp.Test(httptest.NewRequest(fiber.MethodGet, "/artists/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestArtistDetail(t *testing.T) {
	controller := &fakeArtistController{page: &types.ArtistPage{
		ID:   42,
		Name: "Guns N Petals",
	}}
	fiberApp := newArtistTestApp(controller)

	resp, err := fiberApp.Test(httptest.NewRequest(fiber.MethodGet, "/artists/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "show_artist", body["page"])
}

func TestArtistCreateSuccessFlash(t *testing.T) {
	fiberApp := newArtistTestApp(&fakeArtistController{})

	resp := postForm(t, fiberApp, "/artists/create", url.Values{
		"name":   {"Matt Quevedo"},
		"city":   {"New York"},
		"state":  {"NY"},
		"genres": {"Jazz"},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Artist Matt Quevedo was successfully listed!", body["flash"])
}

func TestArtistEditRedirectsToDetail(t *testing.T) {
	controller := &fakeArtistController{page: &types.ArtistPage{ID: 4, Name: "Old Name"}}
	fiberApp := newArtistTestApp(controller)

	resp := postForm(t, fiberApp, "/artists/4/edit", url.Values{
		"name":   {"New Name"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Rock n Roll"},
	})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/artists/4", resp.Header.Get("Location"))
	require.Contains(t, controller.updated, 4)
	assert.Equal(t, "New Name", controller.updated[4].Name)
}

func TestArtistEditNotFound(t *testing.T) {
	fiberApp := newArtistTestApp(&fakeArtistController{})

	resp := postForm(t, fiberApp, "/artists/9/edit", url.Values{
		"name":   {"New Name"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Rock n Roll"},
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
