package controllers

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/campusly/campusly-data/database"
	"github.com/campusly/campusly-data/errs"
	"github.com/campusly/campusly-data/models"
)

// GroupDetailController backs one group's hub screen: its announcements,
// its tasks narrowed by an optional status filter, and the done/total
// progress aggregate. Load selects which group is shown.
type GroupDetailController struct {
	db     database.Database
	logger zerolog.Logger

	mu            sync.RWMutex
	groupID       int64
	statusFilter  *models.TaskStatus
	announcements []*models.GroupAnnouncement
	tasks         []*models.GroupTask
	progress      models.TaskProgress

	updates chan struct{}
	cancel  context.CancelFunc
}

func NewGroupDetailController(db database.Database) *GroupDetailController {
	c := &GroupDetailController{
		db:      db,
		logger:  log.With().Str("controller", "group_detail").Logger(),
		updates: make(chan struct{}, 1),
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	go c.watch(ctx)
	return c
}

func (c *GroupDetailController) Close() { c.cancel() }

func (c *GroupDetailController) Updates() <-chan struct{} { return c.updates }

// Load points the controller at a group and recomputes everything.
func (c *GroupDetailController) Load(groupID int64) {
	c.mu.Lock()
	c.groupID = groupID
	c.mu.Unlock()
	c.refresh()
}

// SetStatusFilter narrows the task view to one status; nil shows all. The
// underlying data is untouched.
func (c *GroupDetailController) SetStatusFilter(status *models.TaskStatus) {
	c.mu.Lock()
	c.statusFilter = status
	c.mu.Unlock()
	c.refresh()
}

// StatusFilter returns the active task filter, nil when showing all.
func (c *GroupDetailController) StatusFilter() *models.TaskStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.statusFilter
}

// Announcements returns the group's announcements, pinned first, then
// newest first.
func (c *GroupDetailController) Announcements() []*models.GroupAnnouncement {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*models.GroupAnnouncement(nil), c.announcements...)
}

// Tasks returns the group's tasks in status-priority order, narrowed by the
// active filter.
func (c *GroupDetailController) Tasks() []*models.GroupTask {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*models.GroupTask(nil), c.tasks...)
}

// Progress returns the completed/total aggregate over ALL the group's
// tasks, regardless of the active filter.
func (c *GroupDetailController) Progress() models.TaskProgress {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.progress
}

// AddAnnouncement posts a new announcement to the loaded group.
func (c *GroupDetailController) AddAnnouncement(title, body string) {
	groupID := c.loadedGroup()
	if groupID == 0 {
		return
	}

	announcement := &models.GroupAnnouncement{GroupID: groupID, Title: title, Body: body}
	if err := c.db.GroupAnnouncementRepo().Add(announcement); err != nil {
		c.logger.Error().Err(errs.NewStoreErr("add", "group announcement", err)).Msg("add failed")
		return
	}
	c.refresh()
}

// UpdateAnnouncement rewrites an announcement and stamps its edit time.
func (c *GroupDetailController) UpdateAnnouncement(announcement *models.GroupAnnouncement) {
	if err := c.db.GroupAnnouncementRepo().Update(announcement); err != nil {
		c.logger.Error().Err(errs.NewStoreErr("update", "group announcement", err)).Msg("update failed")
		return
	}
	c.refresh()
}

// TogglePin pins or unpins an announcement.
func (c *GroupDetailController) TogglePin(id int64, pinned bool) {
	if err := c.db.GroupAnnouncementRepo().SetPinned(id, pinned); err != nil {
		c.logger.Error().Err(errs.NewStoreErr("pin", "group announcement", err)).Msg("pin failed")
		return
	}
	c.refresh()
}

// DeleteAnnouncement removes an announcement from the loaded group.
func (c *GroupDetailController) DeleteAnnouncement(id int64) {
	if err := c.db.GroupAnnouncementRepo().Delete(id); err != nil {
		c.logger.Error().Err(errs.NewStoreErr("delete", "group announcement", err)).Msg("delete failed")
		return
	}
	c.refresh()
}

// AddTask creates a task in the loaded group.
func (c *GroupDetailController) AddTask(title, description string) {
	groupID := c.loadedGroup()
	if groupID == 0 {
		return
	}

	task := &models.GroupTask{GroupID: groupID, Title: title, Description: description}
	if err := c.db.GroupTaskRepo().Add(task); err != nil {
		c.logger.Error().Err(errs.NewStoreErr("add", "group task", err)).Msg("add failed")
		return
	}
	c.refresh()
}

// UpdateTask rewrites a task record in full.
func (c *GroupDetailController) UpdateTask(task *models.GroupTask) {
	if err := c.db.GroupTaskRepo().Update(task); err != nil {
		c.logger.Error().Err(errs.NewStoreErr("update", "group task", err)).Msg("update failed")
		return
	}
	c.refresh()
}

// SetTaskStatus moves a task to an explicit status.
func (c *GroupDetailController) SetTaskStatus(id int64, status models.TaskStatus) {
	if err := c.db.GroupTaskRepo().SetStatus(id, status); err != nil {
		c.logger.Error().Err(errs.NewStoreErr("update", "group task", err)).Msg("status change failed")
		return
	}
	c.refresh()
}

// CycleTaskStatus advances a task one step around
// INCOMPLETE -> STARTED -> COMPLETE -> INCOMPLETE.
func (c *GroupDetailController) CycleTaskStatus(id int64) {
	task, err := c.db.GroupTaskRepo().FindByID(id)
	if err != nil {
		c.logger.Error().Err(errs.NewStoreErr("find", "group task", err)).Msg("status cycle failed")
		return
	}
	if task == nil {
		return
	}
	c.SetTaskStatus(id, task.Status.Next())
}

// DeleteTask removes a task from the loaded group.
func (c *GroupDetailController) DeleteTask(id int64) {
	if err := c.db.GroupTaskRepo().Delete(id); err != nil {
		c.logger.Error().Err(errs.NewStoreErr("delete", "group task", err)).Msg("delete failed")
		return
	}
	c.refresh()
}

func (c *GroupDetailController) loadedGroup() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.groupID
}

func (c *GroupDetailController) watch(ctx context.Context) {
	changes := c.db.Watch(ctx,
		database.TableGroupAnnouncements,
		database.TableGroupTasks,
		database.TableStudyGroups,
	)
	for range changes {
		c.refresh()
	}
}

func (c *GroupDetailController) refresh() {
	c.mu.RLock()
	groupID := c.groupID
	statusFilter := c.statusFilter
	c.mu.RUnlock()

	if groupID == 0 {
		c.mu.Lock()
		c.announcements = nil
		c.tasks = nil
		c.progress = models.TaskProgress{}
		c.mu.Unlock()
		c.signal()
		return
	}

	announcements, err := c.db.GroupAnnouncementRepo().ByGroup(groupID)
	if err != nil {
		c.logger.Error().Err(errs.NewStoreErr("load", "group announcements", err)).Msg("refresh failed")
		return
	}
	tasks, err := c.db.GroupTaskRepo().ByGroup(groupID, statusFilter)
	if err != nil {
		c.logger.Error().Err(errs.NewStoreErr("load", "group tasks", err)).Msg("refresh failed")
		return
	}
	progress, err := c.db.GroupTaskRepo().Progress(groupID)
	if err != nil {
		c.logger.Error().Err(errs.NewStoreErr("load", "task progress", err)).Msg("refresh failed")
		return
	}

	c.mu.Lock()
	c.announcements = announcements
	c.tasks = tasks
	c.progress = progress
	c.mu.Unlock()
	c.signal()
}

func (c *GroupDetailController) signal() {
	select {
	case c.updates <- struct{}{}:
	default:
	}
}
