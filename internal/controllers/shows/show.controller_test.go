package showController

import (
	"context"
	"testing"
	"time"

	"showbill/internal/models"
	"showbill/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubShowRepo struct {
	shows   []models.Show
	created []*models.Show
}

func (r *stubShowRepo) GetAllWithEntities(ctx context.Context) ([]models.Show, error) {
	return r.shows, nil
}

func (r *stubShowRepo) GetByVenueID(ctx context.Context, venueID int) ([]models.Show, error) {
	return nil, nil
}

func (r *stubShowRepo) GetByArtistID(ctx context.Context, artistID int) ([]models.Show, error) {
	return nil, nil
}

func (r *stubShowRepo) CountUpcomingByVenue(
	ctx context.Context,
	now time.Time,
) (map[int]int, error) {
	return map[int]int{}, nil
}

func (r *stubShowRepo) Create(ctx context.Context, show *models.Show) error {
	r.created = append(r.created, show)
	return nil
}

func TestListDecoratesShows(t *testing.T) {
	start := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)
	repo := &stubShowRepo{shows: []models.Show{
		{
			ArtistID:  10,
			VenueID:   5,
			StartTime: start,
			Artist: &models.Artist{
				BaseModel: models.BaseModel{ID: 10},
				Name:      "The Wild Sax Band",
				ImageLink: "https://example.com/sax.jpg",
			},
			Venue: &models.Venue{
				BaseModel: models.BaseModel{ID: 5},
				Name:      "Park Square Live Music & Coffee",
			},
		},
	}}

	sc := &ShowController{showRepo: repo, log: logger.New("showControllerTest")}

	items, err := sc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, 5, items[0].VenueID)
	assert.Equal(t, "Park Square Live Music & Coffee", items[0].VenueName)
	assert.Equal(t, 10, items[0].ArtistID)
	assert.Equal(t, "The Wild Sax Band", items[0].ArtistName)
	assert.Equal(t, "https://example.com/sax.jpg", items[0].ArtistImageLink)
	assert.Equal(t, "Mon 06, 15, 2026 8:00PM", items[0].StartTime)
}

func TestListEmpty(t *testing.T) {
	sc := &ShowController{showRepo: &stubShowRepo{}, log: logger.New("showControllerTest")}

	items, err := sc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateRejectsBadStartTime(t *testing.T) {
	repo := &stubShowRepo{}
	sc := &ShowController{showRepo: repo, log: logger.New("showControllerTest")}

	form := types.ShowForm{ArtistID: 1, VenueID: 2, StartTime: "not a time"}
	_, err := sc.Create(context.Background(), form)
	assert.Error(t, err)
	assert.Empty(t, repo.created)
}
