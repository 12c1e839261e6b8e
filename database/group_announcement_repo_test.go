package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusly/campusly-data/models"
)

func TestGroupAnnouncementOrdering(t *testing.T) {
	data := openTestDatabase(t)
	groupID := addTestGroup(t, data, "Announcers")
	repo := data.GroupAnnouncementRepo()

	base := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	rows := []*models.GroupAnnouncement{
		{GroupID: groupID, Title: "old", CreatedAt: base},
		{GroupID: groupID, Title: "new", CreatedAt: base.Add(2 * time.Hour)},
		{GroupID: groupID, Title: "pinned old", Pinned: true, CreatedAt: base.Add(time.Hour)},
	}
	for _, row := range rows {
		require.NoError(t, repo.Add(row))
	}

	got, err := repo.ByGroup(groupID)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Pinned first, then newest first.
	assert.Equal(t, "pinned old", got[0].Title)
	assert.Equal(t, "new", got[1].Title)
	assert.Equal(t, "old", got[2].Title)
}

func TestGroupAnnouncementUpdateStampsEditTime(t *testing.T) {
	data := openTestDatabase(t)
	groupID := addTestGroup(t, data, "Editors")
	repo := data.GroupAnnouncementRepo()

	announcement := &models.GroupAnnouncement{GroupID: groupID, Title: "draft"}
	require.NoError(t, repo.Add(announcement))

	got, err := repo.FindByID(announcement.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.EditedAt)

	got.Title = "final"
	require.NoError(t, repo.Update(got))

	got, err = repo.FindByID(announcement.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "final", got.Title)
	assert.NotNil(t, got.EditedAt)
}

func TestGroupAnnouncementPinToggle(t *testing.T) {
	data := openTestDatabase(t)
	groupID := addTestGroup(t, data, "Pinners")
	repo := data.GroupAnnouncementRepo()

	announcement := &models.GroupAnnouncement{GroupID: groupID, Title: "notice"}
	require.NoError(t, repo.Add(announcement))

	require.NoError(t, repo.SetPinned(announcement.ID, true))
	got, err := repo.FindByID(announcement.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Pinned)

	require.NoError(t, repo.SetPinned(announcement.ID, false))
	got, err = repo.FindByID(announcement.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Pinned)
}
