package repositories

import (
	"showbill/internal/database"
)

type Repository struct {
	Venue  VenueRepository
	Artist ArtistRepository
	Show   ShowRepository
}

func New(db database.DB) Repository {
	return Repository{
		Venue:  NewVenueRepository(db),
		Artist: NewArtistRepository(db),
		Show:   NewShowRepository(db),
	}
}
