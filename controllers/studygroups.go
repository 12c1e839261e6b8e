package controllers

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/campusly/campusly-data/database"
	"github.com/campusly/campusly-data/errs"
	"github.com/campusly/campusly-data/models"
	"github.com/campusly/campusly-data/prefs"
	"github.com/campusly/campusly-data/seeds"
)

// StudyGroupsController backs the study-group directory: the group list,
// the joined-groups view, and join/leave intents. Membership is a relation
// on group identity, so deleting a group prunes its membership through the
// store's own cascade.
type StudyGroupsController struct {
	db     database.Database
	logger zerolog.Logger

	mu     sync.RWMutex
	groups []*models.StudyGroup
	joined []*models.StudyGroup

	updates chan struct{}
	cancel  context.CancelFunc
}

func NewStudyGroupsController(db database.Database, store *prefs.Store) *StudyGroupsController {
	logger := log.With().Str("controller", "study_groups").Logger()

	c := &StudyGroupsController{
		db:      db,
		logger:  logger,
		updates: make(chan struct{}, 1),
	}

	if err := seeds.EnsureStudyGroups(db, store, logger); err != nil {
		logger.Error().Err(err).Msg("seeding study groups failed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.refresh()
	go c.watch(ctx)
	return c
}

func (c *StudyGroupsController) Close() { c.cancel() }

func (c *StudyGroupsController) Updates() <-chan struct{} { return c.updates }

// Groups returns the current group list.
func (c *StudyGroupsController) Groups() []*models.StudyGroup {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*models.StudyGroup(nil), c.groups...)
}

// Joined returns the groups the student is a member of. Only existing
// groups can appear here.
func (c *StudyGroupsController) Joined() []*models.StudyGroup {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*models.StudyGroup(nil), c.joined...)
}

// IsJoined reports membership for one group from the current snapshot.
func (c *StudyGroupsController) IsJoined(groupID int64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, group := range c.joined {
		if group.ID == groupID {
			return true
		}
	}
	return false
}

// ToggleJoin joins the group when not a member and leaves it otherwise.
func (c *StudyGroupsController) ToggleJoin(groupID int64) {
	joined, err := c.db.StudyGroupRepo().IsJoined(groupID)
	if err != nil {
		c.logger.Error().Err(errs.NewStoreErr("read", "membership", err)).Msg("toggle join failed")
		return
	}

	if joined {
		err = c.db.StudyGroupRepo().Leave(groupID)
	} else {
		err = c.db.StudyGroupRepo().Join(groupID)
	}
	if err != nil {
		c.logger.Error().Err(errs.NewStoreErr("write", "membership", err)).Msg("toggle join failed")
		return
	}
	c.refresh()
}

// Add creates a new study group.
func (c *StudyGroupsController) Add(name, description string) {
	group := &models.StudyGroup{Name: name, Description: description}
	if err := c.db.StudyGroupRepo().Add(group); err != nil {
		c.logger.Error().Err(errs.NewStoreErr("add", "study group", err)).Msg("add failed")
		return
	}
	c.refresh()
}

// Delete removes a group; its announcements, tasks and membership go with
// it.
func (c *StudyGroupsController) Delete(groupID int64) {
	if err := c.db.StudyGroupRepo().Delete(groupID); err != nil {
		c.logger.Error().Err(errs.NewStoreErr("delete", "study group", err)).Msg("delete failed")
		return
	}
	c.refresh()
}

func (c *StudyGroupsController) watch(ctx context.Context) {
	changes := c.db.Watch(ctx, database.TableStudyGroups, database.TableGroupMemberships)
	for range changes {
		c.refresh()
	}
}

func (c *StudyGroupsController) refresh() {
	groups, err := c.db.StudyGroupRepo().FindAll()
	if err != nil {
		c.logger.Error().Err(errs.NewStoreErr("load", "study groups", err)).Msg("refresh failed")
		return
	}
	joined, err := c.db.StudyGroupRepo().Joined()
	if err != nil {
		c.logger.Error().Err(errs.NewStoreErr("load", "joined groups", err)).Msg("refresh failed")
		return
	}

	c.mu.Lock()
	c.groups = groups
	c.joined = joined
	c.mu.Unlock()
	c.signal()
}

func (c *StudyGroupsController) signal() {
	select {
	case c.updates <- struct{}{}:
	default:
	}
}
