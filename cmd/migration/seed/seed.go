package seed

import (
	"time"

	. "showbill/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

// Seed loads the demo directory: three venues, three artists, and a handful
// of shows on either side of the current date.
func Seed(db *gorm.DB, log logger.Logger) error {
	log = log.Function("Seed")

	venues := []*Venue{
		{
			Name:               "The Musical Hop",
			City:               "San Francisco",
			State:              "CA",
			Address:            "1015 Folsom Street",
			Phone:              "123-123-1234",
			Genres:             GenreList{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5",
			WebsiteLink:        "https://www.themusicalhop.com",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		},
		{
			Name:         "The Dueling Pianos Bar",
			City:         "New York",
			State:        "NY",
			Address:      "335 Delancey Street",
			Phone:        "914-003-1132",
			Genres:       GenreList{"Classical", "R&B", "Hip-Hop"},
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae",
			WebsiteLink:  "https://www.theduelingpianos.com",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			City:         "San Francisco",
			State:        "CA",
			Address:      "34 Whiskey Moore Ave",
			Phone:        "415-000-1234",
			Genres:       GenreList{"Rock n Roll", "Jazz", "Classical", "Folk"},
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7",
			WebsiteLink:  "https://www.parksquarelivemusicandcoffee.com",
		},
	}

	artists := []*Artist{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Genres:             GenreList{"Rock n Roll"},
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f",
			WebsiteLink:        "https://www.gunsnpetalsband.com",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		},
		{
			Name:      "Matt Quevedo",
			City:      "New York",
			State:     "NY",
			Phone:     "300-400-5000",
			Genres:    GenreList{"Jazz"},
			ImageLink: "https://images.unsplash.com/photo-1495223153807-b916f75de8c5",
		},
		{
			Name:      "The Wild Sax Band",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			Genres:    GenreList{"Jazz", "Classical"},
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61",
		},
	}

	for _, venue := range venues {
		if err := db.Create(venue).Error; err != nil {
			return log.Err("failed to seed venue", err, "name", venue.Name)
		}
	}

	for _, artist := range artists {
		if err := db.Create(artist).Error; err != nil {
			return log.Err("failed to seed artist", err, "name", artist.Name)
		}
	}

	now := time.Now().UTC()
	shows := []*Show{
		{ArtistID: artists[0].ID, VenueID: venues[0].ID, StartTime: now.AddDate(-1, -2, 0)},
		{ArtistID: artists[1].ID, VenueID: venues[2].ID, StartTime: now.AddDate(0, -6, 0)},
		{ArtistID: artists[2].ID, VenueID: venues[2].ID, StartTime: now.AddDate(0, 1, 0)},
		{ArtistID: artists[2].ID, VenueID: venues[2].ID, StartTime: now.AddDate(0, 1, 7)},
		{ArtistID: artists[2].ID, VenueID: venues[2].ID, StartTime: now.AddDate(0, 1, 14)},
	}

	for _, show := range shows {
		if err := db.Create(show).Error; err != nil {
			return log.Err("failed to seed show", err)
		}
	}

	log.Info("Seed complete",
		"venues", len(venues), "artists", len(artists), "shows", len(shows))
	return nil
}
