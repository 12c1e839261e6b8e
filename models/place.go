package models

import "gorm.io/datatypes"

// Place represents a campus location a student can browse and rate
type Place struct {
	ID          int64                       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string                      `json:"name" gorm:"type:text;not null"`
	Campus      string                      `json:"campus" gorm:"type:text;not null"`
	Description string                      `json:"description" gorm:"type:text"`
	Rating      float64                     `json:"rating"`
	Tags        datatypes.JSONSlice[string] `json:"tags,omitempty"`
	IsFeatured  bool                        `json:"is_featured"`
	ImageURI    *string                     `json:"image_uri,omitempty" gorm:"type:text"`
}

func (Place) TableName() string { return "places" }
