package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusly/campusly-data/errs"
)

func TestPlaceFormValidation(t *testing.T) {
	tests := []struct {
		name    string
		form    PlaceForm
		wantErr bool
	}{
		{
			name: "complete form",
			form: PlaceForm{
				Name:     "Library",
				Campus:   "Casa Loma",
				Rating:   4.5,
				Tags:     []string{"Study", "Quiet"},
				ImageURI: "asset://places/library",
			},
		},
		{
			name:    "missing name",
			form:    PlaceForm{Campus: "Casa Loma"},
			wantErr: true,
		},
		{
			name:    "missing campus",
			form:    PlaceForm{Name: "Library"},
			wantErr: true,
		},
		{
			name:    "rating above scale",
			form:    PlaceForm{Name: "Library", Campus: "Casa Loma", Rating: 5.1},
			wantErr: true,
		},
		{
			name: "empty image is fine",
			form: PlaceForm{Name: "Library", Campus: "Casa Loma"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlaceFormModel(t *testing.T) {
	form := PlaceForm{
		Name:     "Library",
		Campus:   "Casa Loma",
		Rating:   4.5,
		Tags:     []string{"Study, with commas", "Quiet"},
		ImageURI: "asset://places/library",
	}
	require.NoError(t, form.Validate())

	place := form.Model()
	assert.Zero(t, place.ID)
	assert.Equal(t, "Library", place.Name)
	assert.Equal(t, []string{"Study, with commas", "Quiet"}, []string(place.Tags))
	require.NotNil(t, place.ImageURI)
	assert.Equal(t, "asset://places/library", *place.ImageURI)

	// No image means no pointer, not a pointer to "".
	assert.Nil(t, PlaceForm{Name: "x", Campus: "y"}.Model().ImageURI)
}

func TestEventFormValidation(t *testing.T) {
	valid := EventForm{
		Name:     "Orientation",
		Location: "Main Hall",
		Date:     "2025-10-06",
		Time:     "18:30",
		Category: "clubs",
	}

	tests := []struct {
		name    string
		mutate  func(*EventForm)
		wantErr bool
	}{
		{name: "complete form", mutate: func(*EventForm) {}},
		{name: "bad date", mutate: func(f *EventForm) { f.Date = "06/10/2025" }, wantErr: true},
		{name: "bad time", mutate: func(f *EventForm) { f.Time = "6pm" }, wantErr: true},
		{name: "unknown category", mutate: func(f *EventForm) { f.Category = "parties" }, wantErr: true},
		{name: "empty category ok", mutate: func(f *EventForm) { f.Category = "" }},
		{name: "negative attendees", mutate: func(f *EventForm) { f.Attendees = -1 }, wantErr: true},
		{name: "bad image url", mutate: func(f *EventForm) { f.ImageURL = "not a url" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			err := form.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnnouncementFormLink(t *testing.T) {
	assert.NoError(t, AnnouncementForm{Title: "t", Message: "m"}.Validate())
	assert.NoError(t, AnnouncementForm{Link: "https://example.edu/news"}.Validate())
	assert.Error(t, AnnouncementForm{Link: "nope"}.Validate())
}

func TestGroupFormsRequireTitles(t *testing.T) {
	assert.Error(t, GroupAnnouncementForm{Body: "body only"}.Validate())
	assert.NoError(t, GroupAnnouncementForm{Title: "Room change"}.Validate())

	assert.Error(t, TaskForm{Description: "no title"}.Validate())
	assert.NoError(t, TaskForm{Title: "Practice set", Labels: []string{"math"}}.Validate())
}

func TestValidationErrorNamesTheField(t *testing.T) {
	err := PlaceForm{Campus: "Casa Loma"}.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "Name")
	assert.ErrorIs(t, err, errs.ErrInvalidField)
}
