package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusly/campusly-data/models"
)

func TestStudyGroupAddThenFindByID(t *testing.T) {
	data := openTestDatabase(t)
	repo := data.StudyGroupRepo()

	group := &models.StudyGroup{Name: "Algorithms", Description: "Weekly problem sets"}
	require.NoError(t, repo.Add(group))
	require.NotZero(t, group.ID)

	got, err := repo.FindByID(group.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Algorithms", got.Name)
	assert.Equal(t, "Weekly problem sets", got.Description)
}

func TestJoinLeaveMembership(t *testing.T) {
	data := openTestDatabase(t)
	repo := data.StudyGroupRepo()

	groupID := addTestGroup(t, data, "Joiners")

	joined, err := repo.IsJoined(groupID)
	require.NoError(t, err)
	assert.False(t, joined)

	require.NoError(t, repo.Join(groupID))
	joined, err = repo.IsJoined(groupID)
	require.NoError(t, err)
	assert.True(t, joined)

	// Joining again is a no-op, not a second membership row.
	require.NoError(t, repo.Join(groupID))
	all, err := repo.Joined()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Leave(groupID))
	joined, err = repo.IsJoined(groupID)
	require.NoError(t, err)
	assert.False(t, joined)
}

func TestDeleteGroupCascades(t *testing.T) {
	data := openTestDatabase(t)
	repo := data.StudyGroupRepo()

	groupID := addTestGroup(t, data, "Doomed")
	keptID := addTestGroup(t, data, "Kept")

	require.NoError(t, repo.Join(groupID))
	require.NoError(t, repo.Join(keptID))
	require.NoError(t, data.GroupAnnouncementRepo().Add(&models.GroupAnnouncement{GroupID: groupID, Title: "hello"}))
	require.NoError(t, data.GroupTaskRepo().Add(&models.GroupTask{GroupID: groupID, Title: "todo"}))

	require.NoError(t, repo.Delete(groupID))

	// The membership view prunes itself through the store's own cascade.
	joined, err := repo.Joined()
	require.NoError(t, err)
	require.Len(t, joined, 1)
	assert.Equal(t, keptID, joined[0].ID)

	announcements, err := data.GroupAnnouncementRepo().ByGroup(groupID)
	require.NoError(t, err)
	assert.Empty(t, announcements)

	tasks, err := data.GroupTaskRepo().ByGroup(groupID, nil)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
