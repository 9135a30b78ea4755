package types

import (
	"strings"

	"showbill/internal/models"
	"showbill/internal/utils"
)

// checkboxMarker is the literal value browsers submit for a checked
// checkbox field; absence of the field means false.
const checkboxMarker = "y"

// ValidationErrors maps a form field name to its user-visible message.
type ValidationErrors map[string]string

func (v ValidationErrors) Any() bool {
	return len(v) > 0
}

// Messages returns every field-level message for flash display.
func (v ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(v))
	for _, msg := range v {
		messages = append(messages, msg)
	}
	return messages
}

// VenueForm is the typed request for venue create and edit submissions.
type VenueForm struct {
	Name               string   `form:"name"                json:"name"`
	City               string   `form:"city"                json:"city"`
	State              string   `form:"state"               json:"state"`
	Address            string   `form:"address"             json:"address"`
	Phone              string   `form:"phone"               json:"phone"`
	Genres             []string `form:"genres"              json:"genres"`
	FacebookLink       string   `form:"facebook_link"       json:"facebook_link"`
	ImageLink          string   `form:"image_link"          json:"image_link"`
	WebsiteLink        string   `form:"website_link"        json:"website_link"`
	SeekingTalent      string   `form:"seeking_talent"      json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func (f VenueForm) Validate() ValidationErrors {
	errs := ValidationErrors{}
	requireField(errs, "name", f.Name, "Name is required.")
	requireField(errs, "city", f.City, "City is required.")
	requireField(errs, "state", f.State, "State is required.")
	requireField(errs, "address", f.Address, "Address is required.")
	if len(f.Genres) == 0 {
		errs["genres"] = "At least one genre is required."
	}
	return errs
}

func (f VenueForm) ToModel() models.Venue {
	return models.Venue{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              strings.TrimSpace(f.State),
		Address:            strings.TrimSpace(f.Address),
		Phone:              strings.TrimSpace(f.Phone),
		Genres:             models.GenreList(f.Genres),
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      f.SeekingTalent == checkboxMarker,
		SeekingDescription: f.SeekingDescription,
	}
}

// ToUpdateFields shapes the form into the column set for a single UPDATE.
func (f VenueForm) ToUpdateFields() map[string]any {
	return map[string]any{
		"name":                strings.TrimSpace(f.Name),
		"city":                strings.TrimSpace(f.City),
		"state":               strings.TrimSpace(f.State),
		"address":             strings.TrimSpace(f.Address),
		"phone":               strings.TrimSpace(f.Phone),
		"genres":              models.GenreList(f.Genres),
		"facebook_link":       f.FacebookLink,
		"image_link":          f.ImageLink,
		"website_link":        f.WebsiteLink,
		"seeking_talent":      f.SeekingTalent == checkboxMarker,
		"seeking_description": f.SeekingDescription,
	}
}

// FromVenue pre-populates the form for the edit view.
func (f *VenueForm) FromVenue(venue models.Venue) {
	f.Name = venue.Name
	f.City = venue.City
	f.State = venue.State
	f.Address = venue.Address
	f.Phone = venue.Phone
	f.Genres = venue.Genres
	f.FacebookLink = venue.FacebookLink
	f.ImageLink = venue.ImageLink
	f.WebsiteLink = venue.WebsiteLink
	if venue.SeekingTalent {
		f.SeekingTalent = checkboxMarker
	}
	f.SeekingDescription = venue.SeekingDescription
}

// ArtistForm is the typed request for artist create and edit submissions.
type ArtistForm struct {
	Name               string   `form:"name"                json:"name"`
	City               string   `form:"city"                json:"city"`
	State              string   `form:"state"               json:"state"`
	Phone              string   `form:"phone"               json:"phone"`
	Genres             []string `form:"genres"              json:"genres"`
	FacebookLink       string   `form:"facebook_link"       json:"facebook_link"`
	ImageLink          string   `form:"image_link"          json:"image_link"`
	WebsiteLink        string   `form:"website_link"        json:"website_link"`
	SeekingVenue       string   `form:"seeking_venue"       json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func (f ArtistForm) Validate() ValidationErrors {
	errs := ValidationErrors{}
	requireField(errs, "name", f.Name, "Name is required.")
	requireField(errs, "city", f.City, "City is required.")
	requireField(errs, "state", f.State, "State is required.")
	if len(f.Genres) == 0 {
		errs["genres"] = "At least one genre is required."
	}
	return errs
}

func (f ArtistForm) ToModel() models.Artist {
	return models.Artist{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              strings.TrimSpace(f.State),
		Phone:              strings.TrimSpace(f.Phone),
		Genres:             models.GenreList(f.Genres),
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       f.SeekingVenue == checkboxMarker,
		SeekingDescription: f.SeekingDescription,
	}
}

func (f ArtistForm) ToUpdateFields() map[string]any {
	return map[string]any{
		"name":                strings.TrimSpace(f.Name),
		"city":                strings.TrimSpace(f.City),
		"state":               strings.TrimSpace(f.State),
		"phone":               strings.TrimSpace(f.Phone),
		"genres":              models.GenreList(f.Genres),
		"facebook_link":       f.FacebookLink,
		"image_link":          f.ImageLink,
		"website_link":        f.WebsiteLink,
		"seeking_venue":       f.SeekingVenue == checkboxMarker,
		"seeking_description": f.SeekingDescription,
	}
}

func (f *ArtistForm) FromArtist(artist models.Artist) {
	f.Name = artist.Name
	f.City = artist.City
	f.State = artist.State
	f.Phone = artist.Phone
	f.Genres = artist.Genres
	f.FacebookLink = artist.FacebookLink
	f.ImageLink = artist.ImageLink
	f.WebsiteLink = artist.WebsiteLink
	if artist.SeekingVenue {
		f.SeekingVenue = checkboxMarker
	}
	f.SeekingDescription = artist.SeekingDescription
}

// ShowForm is the typed request for show create submissions.
type ShowForm struct {
	ArtistID  int    `form:"artist_id"  json:"artist_id"`
	VenueID   int    `form:"venue_id"   json:"venue_id"`
	StartTime string `form:"start_time" json:"start_time"`
}

func (f ShowForm) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if f.ArtistID <= 0 {
		errs["artist_id"] = "Artist ID is required."
	}
	if f.VenueID <= 0 {
		errs["venue_id"] = "Venue ID is required."
	}
	if strings.TrimSpace(f.StartTime) == "" {
		errs["start_time"] = "Start time is required."
	} else if _, err := utils.ParseShowTime(f.StartTime); err != nil {
		errs["start_time"] = "Start time is not a valid timestamp."
	}
	return errs
}

func (f ShowForm) ToModel() (models.Show, error) {
	startTime, err := utils.ParseShowTime(f.StartTime)
	if err != nil {
		return models.Show{}, err
	}
	return models.Show{
		ArtistID:  f.ArtistID,
		VenueID:   f.VenueID,
		StartTime: startTime,
	}, nil
}

// SearchForm carries the free-text search term for both directories.
type SearchForm struct {
	SearchTerm string `form:"search_term" json:"search_term"`
}

func requireField(errs ValidationErrors, field, value, message string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = message
	}
}
