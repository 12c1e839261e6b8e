package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/campusly/campusly-data/models"
)

func TestPlacesSeedOnce(t *testing.T) {
	data, store := testEnv(t)

	first := NewPlacesController(data, store)
	defer first.Close()
	require.Len(t, first.Places(), 3)

	second := NewPlacesController(data, store)
	defer second.Close()
	assert.Len(t, second.Places(), 3)
}

func TestPlaceAddEditScenario(t *testing.T) {
	data, store := testEnv(t)
	c := NewPlacesController(data, store)
	defer c.Close()

	base := len(c.Places())

	c.AddOrUpdate(models.Place{
		Name:   "Library",
		Campus: "Casa Loma",
		Tags:   datatypes.NewJSONSlice([]string{"Study", "Quiet"}),
	})

	all := c.Places()
	require.Len(t, all, base+1)

	var added *models.Place
	for _, place := range all {
		if place.Name == "Library" {
			added = place
		}
	}
	require.NotNil(t, added)
	assert.Equal(t, []string{"Study", "Quiet"}, []string(added.Tags))

	// Renaming by identity keeps every other field.
	edited := *added
	edited.Name = "Main Library"
	c.AddOrUpdate(edited)

	got := c.PlaceByID(added.ID)
	require.NotNil(t, got)
	assert.Equal(t, "Main Library", got.Name)
	assert.Equal(t, "Casa Loma", got.Campus)
	assert.Equal(t, []string{"Study", "Quiet"}, []string(got.Tags))
	assert.Len(t, c.Places(), base+1)
}

func TestPlacesSearchFilter(t *testing.T) {
	data, store := testEnv(t)
	c := NewPlacesController(data, store)
	defer c.Close()

	c.SetSearch("cafeteria")
	filtered := c.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "Cafeteria", filtered[0].Name)

	// Campus text matches too.
	c.SetSearch("st james")
	filtered = c.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "Student Hub", filtered[0].Name)

	c.SetSearch("")
	assert.Len(t, c.Filtered(), len(c.Places()))
}

func TestPlaceDeleteAndAbsentLookup(t *testing.T) {
	data, store := testEnv(t)
	c := NewPlacesController(data, store)
	defer c.Close()

	place := c.Places()[0]
	c.Delete(place.ID)

	assert.Nil(t, c.PlaceByID(place.ID))
	assert.Len(t, c.Places(), 2)
}
