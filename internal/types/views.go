package types

// View models handed to the rendering layer. Rendering itself is an
// external collaborator; these structs are its contract.

// VenueListItem is one row inside an area bucket on the venues directory.
type VenueListItem struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// AreaGroup buckets venues sharing a (city, state) pair.
type AreaGroup struct {
	City   string          `json:"city"`
	State  string          `json:"state"`
	Venues []VenueListItem `json:"venues"`
}

// SearchResultItem is one match on a search results page.
type SearchResultItem struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResults carries the match count and records for a search term.
type SearchResults struct {
	Count int                `json:"count"`
	Data  []SearchResultItem `json:"data"`
}

// ShowInfo decorates a show with its counterpart entity for a detail page.
type ShowInfo struct {
	ArtistID        int    `json:"artist_id,omitempty"`
	ArtistName      string `json:"artist_name,omitempty"`
	ArtistImageLink string `json:"artist_image_link,omitempty"`
	VenueID         int    `json:"venue_id,omitempty"`
	VenueName       string `json:"venue_name,omitempty"`
	VenueImageLink  string `json:"venue_image_link,omitempty"`
	StartTime       string `json:"start_time"`
}

// VenuePage is the venue detail view decorated with partitioned shows.
type VenuePage struct {
	ID                 int        `json:"id"`
	Name               string     `json:"name"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	Address            string     `json:"address"`
	Phone              string     `json:"phone"`
	Genres             []string   `json:"genres"`
	FacebookLink       string     `json:"facebook_link"`
	ImageLink          string     `json:"image_link"`
	WebsiteLink        string     `json:"website_link"`
	SeekingTalent      bool       `json:"seeking_talent"`
	SeekingDescription string     `json:"seeking_description"`
	PastShows          []ShowInfo `json:"past_shows"`
	UpcomingShows      []ShowInfo `json:"upcoming_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}

// ArtistPage is the artist detail view decorated with partitioned shows.
type ArtistPage struct {
	ID                 int        `json:"id"`
	Name               string     `json:"name"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	Phone              string     `json:"phone"`
	Genres             []string   `json:"genres"`
	FacebookLink       string     `json:"facebook_link"`
	ImageLink          string     `json:"image_link"`
	WebsiteLink        string     `json:"website_link"`
	SeekingVenue       bool       `json:"seeking_venue"`
	SeekingDescription string     `json:"seeking_description"`
	PastShows          []ShowInfo `json:"past_shows"`
	UpcomingShows      []ShowInfo `json:"upcoming_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}

// ArtistListItem is one row on the artists directory.
type ArtistListItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ShowListItem is one row on the shows listing.
type ShowListItem struct {
	VenueID         int    `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}
