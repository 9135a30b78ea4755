package models

import "time"

// Show is a pure join entity: one artist booked into one venue at a start
// time. Deleting either side cascades to its shows.
type Show struct {
	BaseModel
	ArtistID  int       `gorm:"not null;index"                 json:"artistId"`
	VenueID   int       `gorm:"not null;index"                 json:"venueId"`
	StartTime time.Time `gorm:"not null;index"                 json:"startTime"`

	Artist *Artist `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"artist,omitempty"`
	Venue  *Venue  `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"  json:"venue,omitempty"`
}

// IsUpcoming reports whether the show starts at or after the supplied clock
// reading. Shows starting exactly now count as upcoming.
func (s Show) IsUpcoming(now time.Time) bool {
	return !s.StartTime.Before(now)
}
