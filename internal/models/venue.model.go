package models

type Venue struct {
	BaseModel
	Name               string    `gorm:"type:text;not null"            json:"name"`
	City               string    `gorm:"type:varchar(120)"             json:"city"`
	State              string    `gorm:"type:varchar(120)"             json:"state"`
	Address            string    `gorm:"type:varchar(120)"             json:"address"`
	Phone              string    `gorm:"type:varchar(120)"             json:"phone"`
	Genres             GenreList `gorm:"type:text"                     json:"genres"`
	FacebookLink       string    `gorm:"type:varchar(120)"             json:"facebookLink"`
	ImageLink          string    `gorm:"type:varchar(500)"             json:"imageLink"`
	WebsiteLink        string    `gorm:"type:varchar(500)"             json:"websiteLink"`
	SeekingTalent      bool      `gorm:"not null;default:false"        json:"seekingTalent"`
	SeekingDescription string    `gorm:"type:varchar(500)"             json:"seekingDescription"`

	Shows []Show `gorm:"foreignKey:VenueID" json:"shows,omitempty"`
}
