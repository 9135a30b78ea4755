package types

import (
	"testing"

	"showbill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVenueForm() VenueForm {
	return VenueForm{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Genres:  []string{"Jazz", "Reggae"},
	}
}

func TestVenueFormValidate(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(*VenueForm)
		wantedField string
	}{
		{
			name:   "valid form passes",
			mutate: func(f *VenueForm) {},
		},
		{
			name:        "missing name",
			mutate:      func(f *VenueForm) { f.Name = "" },
			wantedField: "name",
		},
		{
			name:        "whitespace-only name",
			mutate:      func(f *VenueForm) { f.Name = "   " },
			wantedField: "name",
		},
		{
			name:        "missing city",
			mutate:      func(f *VenueForm) { f.City = "" },
			wantedField: "city",
		},
		{
			name:        "missing state",
			mutate:      func(f *VenueForm) { f.State = "" },
			wantedField: "state",
		},
		{
			name:        "missing address",
			mutate:      func(f *VenueForm) { f.Address = "" },
			wantedField: "address",
		},
		{
			name:        "missing genres",
			mutate:      func(f *VenueForm) { f.Genres = nil },
			wantedField: "genres",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			form := validVenueForm()
			tc.mutate(&form)

			errs := form.Validate()
			if tc.wantedField == "" {
				assert.False(t, errs.Any())
				return
			}
			assert.True(t, errs.Any())
			assert.Contains(t, errs, tc.wantedField)
		})
	}
}

func TestVenueFormSeekingTalentMarker(t *testing.T) {
	form := validVenueForm()

	form.SeekingTalent = "y"
	assert.True(t, form.ToModel().SeekingTalent)

	form.SeekingTalent = ""
	assert.False(t, form.ToModel().SeekingTalent)

	// Anything other than the checkbox marker means unchecked
	form.SeekingTalent = "yes"
	assert.False(t, form.ToModel().SeekingTalent)
}

func TestVenueFormRoundTrip(t *testing.T) {
	venue := models.Venue{
		Name:               "Park Square Live Music & Coffee",
		City:               "San Francisco",
		State:              "CA",
		Address:            "34 Whiskey Moore Ave",
		Phone:              "415-000-1234",
		Genres:             models.GenreList{"Rock n Roll", "Jazz"},
		SeekingTalent:      true,
		SeekingDescription: "Looking for local acts.",
	}

	var form VenueForm
	form.FromVenue(venue)

	assert.Equal(t, "y", form.SeekingTalent)

	rebuilt := form.ToModel()
	assert.Equal(t, venue.Name, rebuilt.Name)
	assert.Equal(t, venue.Genres, rebuilt.Genres)
	assert.True(t, rebuilt.SeekingTalent)
	assert.Equal(t, venue.SeekingDescription, rebuilt.SeekingDescription)
}

func TestVenueFormToUpdateFields(t *testing.T) {
	form := validVenueForm()
	form.SeekingTalent = "y"

	fields := form.ToUpdateFields()

	assert.Equal(t, "The Musical Hop", fields["name"])
	assert.Equal(t, models.GenreList{"Jazz", "Reggae"}, fields["genres"])
	assert.Equal(t, true, fields["seeking_talent"])
}

func TestArtistFormValidate(t *testing.T) {
	form := ArtistForm{
		Name:   "Guns N Petals",
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Rock n Roll"},
	}
	assert.False(t, form.Validate().Any())

	form.Name = ""
	form.Genres = nil
	errs := form.Validate()
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "genres")
	assert.Len(t, errs.Messages(), 2)
}

func TestShowFormValidate(t *testing.T) {
	testCases := []struct {
		name        string
		form        ShowForm
		wantedField string
	}{
		{
			name: "valid form passes",
			form: ShowForm{ArtistID: 1, VenueID: 2, StartTime: "2026-06-15 20:00:00"},
		},
		{
			name:        "missing artist id",
			form:        ShowForm{VenueID: 2, StartTime: "2026-06-15 20:00:00"},
			wantedField: "artist_id",
		},
		{
			name:        "missing venue id",
			form:        ShowForm{ArtistID: 1, StartTime: "2026-06-15 20:00:00"},
			wantedField: "venue_id",
		},
		{
			name:        "missing start time",
			form:        ShowForm{ArtistID: 1, VenueID: 2},
			wantedField: "start_time",
		},
		{
			name:        "unparseable start time",
			form:        ShowForm{ArtistID: 1, VenueID: 2, StartTime: "tonight"},
			wantedField: "start_time",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := tc.form.Validate()
			if tc.wantedField == "" {
				assert.False(t, errs.Any())
				return
			}
			assert.Contains(t, errs, tc.wantedField)
		})
	}
}

func TestShowFormToModel(t *testing.T) {
	form := ShowForm{ArtistID: 4, VenueID: 7, StartTime: "2026-06-15 20:00:00"}

	show, err := form.ToModel()
	require.NoError(t, err)
	assert.Equal(t, 4, show.ArtistID)
	assert.Equal(t, 7, show.VenueID)
	assert.Equal(t, 2026, show.StartTime.Year())

	form.StartTime = "not a time"
	_, err = form.ToModel()
	assert.Error(t, err)
}
