package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementsSeedOnce(t *testing.T) {
	data, store := testEnv(t)

	first := NewAnnouncementsController(data, store)
	defer first.Close()
	seeded := first.Announcements()
	require.Len(t, seeded, 7)
	for _, announcement := range seeded {
		assert.True(t, announcement.IsSeeded)
	}

	// A second controller over the same stores must not duplicate the set.
	second := NewAnnouncementsController(data, store)
	defer second.Close()
	assert.Len(t, second.Announcements(), 7)
}

func TestAnnouncementsAddValidation(t *testing.T) {
	data, store := testEnv(t)
	c := NewAnnouncementsController(data, store)
	defer c.Close()

	before := len(c.Announcements())

	// Fully blank submissions are refused.
	c.Add("   ", "", "")
	assert.Len(t, c.Announcements(), before)

	// A blank title alone falls back to the placeholder.
	c.Add("", "Pool closed for maintenance", "")
	all := c.Announcements()
	require.Len(t, all, before+1)
	assert.Equal(t, "Untitled Announcement", all[0].Title)
	assert.Equal(t, "Pool closed for maintenance", all[0].Message)
}

func TestSeededAnnouncementsAreNoOpsThroughController(t *testing.T) {
	data, store := testEnv(t)
	c := NewAnnouncementsController(data, store)
	defer c.Close()

	all := c.Announcements()
	require.NotEmpty(t, all)
	seeded := all[len(all)-1]
	require.True(t, seeded.IsSeeded)
	originalTitle := seeded.Title

	c.Update(seeded, "Defaced", "", "")
	c.Delete(seeded)

	refreshed := c.Announcements()
	assert.Len(t, refreshed, len(all))
	assert.Equal(t, originalTitle, refreshed[len(refreshed)-1].Title)
}

func TestUserAnnouncementLifecycle(t *testing.T) {
	data, store := testEnv(t)
	c := NewAnnouncementsController(data, store)
	defer c.Close()

	base := len(c.Announcements())

	c.Add("Bake sale", "Friday in the atrium", "https://example.edu/bake-sale")
	all := c.Announcements()
	require.Len(t, all, base+1)
	added := all[0]
	assert.False(t, added.IsSeeded)

	c.Update(added, "Bake sale moved", "Now on Monday", added.Link)
	all = c.Announcements()
	assert.Equal(t, "Bake sale moved", all[0].Title)

	c.Delete(all[0])
	assert.Len(t, c.Announcements(), base)
}
