package models

import "gorm.io/datatypes"

// Event categories as stored in the category column
const (
	CategoryClubs    = "clubs"
	CategoryAcademic = "academic"
	CategorySports   = "sports"
	CategoryArts     = "arts"
	CategoryOther    = "other"
)

// Date and time layouts events are expected to carry. Values that do not
// parse under these layouts are treated as non-matching by date filters,
// never as an error.
const (
	EventDateLayout = "2006-01-02"
	EventTimeLayout = "15:04"
)

// Event represents a campus event a student can RSVP to
type Event struct {
	ID            int64                       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string                      `json:"name" gorm:"type:text;not null"`
	Location      string                      `json:"location" gorm:"type:text;not null"`
	Date          string                      `json:"date" gorm:"type:text;index"`
	Time          string                      `json:"time" gorm:"type:text"`
	Description   string                      `json:"description" gorm:"type:text"`
	Category      string                      `json:"category" gorm:"type:text;index"`
	Tags          datatypes.JSONSlice[string] `json:"tags,omitempty"`
	Attendees     int                         `json:"attendees"`
	ImageURL      *string                     `json:"image_url,omitempty" gorm:"type:text"`
	LocalImageURI *string                     `json:"local_image_uri,omitempty" gorm:"type:text"`
	RSVP          bool                        `json:"rsvp"`
}

func (Event) TableName() string { return "events" }
