package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusly/campusly-data/models"
)

func addTestGroup(t *testing.T, data Database, name string) int64 {
	t.Helper()
	group := &models.StudyGroup{Name: name, Description: "test group"}
	require.NoError(t, data.StudyGroupRepo().Add(group))
	return group.ID
}

func TestGroupTaskOrdering(t *testing.T) {
	data := openTestDatabase(t)
	groupID := addTestGroup(t, data, "Orderers")
	repo := data.GroupTaskRepo()

	soon := time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC)
	later := time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)

	tasks := []*models.GroupTask{
		{GroupID: groupID, Title: "complete, dated", Status: models.TaskComplete, DueAt: &soon},
		{GroupID: groupID, Title: "incomplete, undated", Status: models.TaskIncomplete},
		{GroupID: groupID, Title: "started, dated", Status: models.TaskStarted, DueAt: &later},
		{GroupID: groupID, Title: "incomplete, later", Status: models.TaskIncomplete, DueAt: &later},
		{GroupID: groupID, Title: "incomplete, soon", Status: models.TaskIncomplete, DueAt: &soon},
		{GroupID: groupID, Title: "started, undated", Status: models.TaskStarted},
	}
	for _, task := range tasks {
		require.NoError(t, repo.Add(task))
	}

	got, err := repo.ByGroup(groupID, nil)
	require.NoError(t, err)
	require.Len(t, got, len(tasks))

	var titles []string
	for _, task := range got {
		titles = append(titles, task.Title)
	}

	// Status priority first, then ascending due date, undated last.
	assert.Equal(t, []string{
		"incomplete, soon",
		"incomplete, later",
		"incomplete, undated",
		"started, dated",
		"started, undated",
		"complete, dated",
	}, titles)
}

func TestGroupTaskStatusFilter(t *testing.T) {
	data := openTestDatabase(t)
	groupID := addTestGroup(t, data, "Filterers")
	repo := data.GroupTaskRepo()

	require.NoError(t, repo.Add(&models.GroupTask{GroupID: groupID, Title: "open"}))
	require.NoError(t, repo.Add(&models.GroupTask{GroupID: groupID, Title: "done", Status: models.TaskComplete}))

	status := models.TaskComplete
	got, err := repo.ByGroup(groupID, &status)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "done", got[0].Title)
}

func TestGroupTaskDefaultsOnAdd(t *testing.T) {
	data := openTestDatabase(t)
	groupID := addTestGroup(t, data, "Defaults")
	repo := data.GroupTaskRepo()

	task := &models.GroupTask{GroupID: groupID, Title: "bare"}
	require.NoError(t, repo.Add(task))

	got, err := repo.FindByID(task.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.TaskIncomplete, got.Status)
	assert.Equal(t, models.TaskTypeGroup, got.Type)
}

func TestGroupTaskProgress(t *testing.T) {
	data := openTestDatabase(t)
	groupID := addTestGroup(t, data, "Progressors")
	repo := data.GroupTaskRepo()

	// Empty group reads as 0/0, not an error.
	progress, err := repo.Progress(groupID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskProgress{Done: 0, Total: 0}, progress)

	require.NoError(t, repo.Add(&models.GroupTask{GroupID: groupID, Title: "a"}))
	require.NoError(t, repo.Add(&models.GroupTask{GroupID: groupID, Title: "b", Status: models.TaskComplete}))
	require.NoError(t, repo.Add(&models.GroupTask{GroupID: groupID, Title: "c", Status: models.TaskStarted}))

	progress, err = repo.Progress(groupID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskProgress{Done: 1, Total: 3}, progress)
}

func TestGroupTaskStatusCycle(t *testing.T) {
	assert.Equal(t, models.TaskStarted, models.TaskIncomplete.Next())
	assert.Equal(t, models.TaskComplete, models.TaskStarted.Next())
	assert.Equal(t, models.TaskIncomplete, models.TaskComplete.Next())

	// A full lap lands back where it started, never skipping a state.
	status := models.TaskIncomplete
	seen := []models.TaskStatus{}
	for i := 0; i < 3; i++ {
		status = status.Next()
		seen = append(seen, status)
	}
	assert.Equal(t, []models.TaskStatus{models.TaskStarted, models.TaskComplete, models.TaskIncomplete}, seen)
}
