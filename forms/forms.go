// Package forms validates user input at the edit-form boundary, before it
// reaches a controller. Controllers assume pre-validated input; the one
// exception is event date/time, which filter logic re-parses leniently on
// every read.
package forms

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"github.com/campusly/campusly-data/errs"
	"github.com/campusly/campusly-data/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// check runs the struct validators and reports the first failing field.
func check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return errs.NewValidationErr(fieldErrs[0].Field(), "failed "+fieldErrs[0].Tag())
	}
	return err
}

type PlaceForm struct {
	Name        string  `validate:"required"`
	Campus      string  `validate:"required"`
	Description string
	Rating      float64 `validate:"gte=0,lte=5"`
	Tags        []string
	IsFeatured  bool
	ImageURI    string  `validate:"omitempty,uri"`
}

// Validate reports the first invalid field, or nil.

func (f PlaceForm) Validate() error { return check(f) }

// Model builds the place record the form describes. ID stays zero; the
// upsert path assigns it.
func (f PlaceForm) Model() models.Place {
	place := models.Place{
		Name:        f.Name,
		Campus:      f.Campus,
		Description: f.Description,
		Rating:      f.Rating,
		Tags:        datatypes.NewJSONSlice(f.Tags),
		IsFeatured:  f.IsFeatured,
	}
	if f.ImageURI != "" {
		uri := f.ImageURI
		place.ImageURI = &uri
	}
	return place
}

type EventForm struct {
	Name        string `validate:"required"`
	Location    string `validate:"required"`
	Date        string `validate:"required,datetime=2006-01-02"`
	Time        string `validate:"required,datetime=15:04"`
	Description string
	Category    string `validate:"omitempty,oneof=clubs academic sports arts other"`
	Tags        []string
	Attendees   int    `validate:"gte=0"`
	ImageURL    string `validate:"omitempty,url"`
}

func (f EventForm) Validate() error { return check(f) }

func (f EventForm) Model() models.Event {
	event := models.Event{
		Name:        f.Name,
		Location:    f.Location,
		Date:        f.Date,
		Time:        f.Time,
		Description: f.Description,
		Category:    f.Category,
		Tags:        datatypes.NewJSONSlice(f.Tags),
		Attendees:   f.Attendees,
	}
	if f.ImageURL != "" {
		url := f.ImageURL
		event.ImageURL = &url
	}
	return event
}

type AnnouncementForm struct {
	Title   string
	Message string
	Link    string `validate:"omitempty,url"`
}

func (f AnnouncementForm) Validate() error { return check(f) }

type GroupAnnouncementForm struct {
	Title string `validate:"required"`
	Body  string
}

func (f GroupAnnouncementForm) Validate() error { return check(f) }

type TaskForm struct {
	Title        string `validate:"required"`
	Description  string
	AssigneeName string
	Labels       []string
}

func (f TaskForm) Validate() error { return check(f) }
