// Package controllers holds one view-state controller per feature screen.
// Each controller owns a snapshot of derived state, recomputes it whenever
// the store signals a change, and mediates user intents into store writes.
// Intent methods are fire-and-forget: failures are logged, not returned.
package controllers

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/campusly/campusly-data/database"
	"github.com/campusly/campusly-data/errs"
	"github.com/campusly/campusly-data/models"
	"github.com/campusly/campusly-data/prefs"
	"github.com/campusly/campusly-data/seeds"
)

const untitledAnnouncement = "Untitled Announcement"

// AnnouncementsController backs the campus announcements screen. Seeded
// announcements are refused here and again in the store, so neither path
// can edit or delete them.
type AnnouncementsController struct {
	db     database.Database
	logger zerolog.Logger

	mu            sync.RWMutex
	announcements []*models.Announcement

	updates chan struct{}
	cancel  context.CancelFunc
}

func NewAnnouncementsController(db database.Database, store *prefs.Store) *AnnouncementsController {
	logger := log.With().Str("controller", "announcements").Logger()

	c := &AnnouncementsController{
		db:      db,
		logger:  logger,
		updates: make(chan struct{}, 1),
	}

	if err := seeds.EnsureAnnouncements(db, store, logger); err != nil {
		logger.Error().Err(err).Msg("seeding announcements failed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.refresh()
	go c.watch(ctx)
	return c
}

// Close tears down the live query.
func (c *AnnouncementsController) Close() { c.cancel() }

// Updates signals after every recomputation of the derived state.
func (c *AnnouncementsController) Updates() <-chan struct{} { return c.updates }

// Announcements returns the current snapshot, newest first.
func (c *AnnouncementsController) Announcements() []*models.Announcement {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*models.Announcement(nil), c.announcements...)
}

// Add inserts a user announcement. A fully blank submission is refused; a
// blank title alone falls back to a placeholder.
func (c *AnnouncementsController) Add(title, message, link string) {
	title = strings.TrimSpace(title)
	if title == "" && strings.TrimSpace(message) == "" {
		return
	}
	if title == "" {
		title = untitledAnnouncement
	}

	announcement := &models.Announcement{Title: title, Message: message, Link: link}
	if err := c.db.AnnouncementRepo().Add(announcement); err != nil {
		c.logger.Error().Err(errs.NewStoreErr("add", "announcement", err)).Msg("add failed")
		return
	}
	c.refresh()
}

// Update rewrites a user announcement. Seeded announcements are left
// untouched.
func (c *AnnouncementsController) Update(announcement *models.Announcement, newTitle, newMessage, newLink string) {
	if announcement.IsSeeded {
		return
	}

	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		newTitle = untitledAnnouncement
	}

	updated := *announcement
	updated.Title = newTitle
	updated.Message = newMessage
	updated.Link = newLink

	err := c.db.AnnouncementRepo().Update(&updated)
	if errors.Is(err, errs.ErrImmutableRecord) {
		c.logger.Debug().Int64("id", announcement.ID).Msg("refused update of seeded announcement")
		return
	}
	if err != nil {
		c.logger.Error().Err(errs.NewStoreErr("update", "announcement", err)).Msg("update failed")
		return
	}
	c.refresh()
}

// Delete removes a user announcement. Seeded announcements stay.
func (c *AnnouncementsController) Delete(announcement *models.Announcement) {
	if announcement.IsSeeded {
		return
	}

	err := c.db.AnnouncementRepo().Delete(announcement.ID)
	if errors.Is(err, errs.ErrImmutableRecord) {
		c.logger.Debug().Int64("id", announcement.ID).Msg("refused delete of seeded announcement")
		return
	}
	if err != nil {
		c.logger.Error().Err(errs.NewStoreErr("delete", "announcement", err)).Msg("delete failed")
		return
	}
	c.refresh()
}

func (c *AnnouncementsController) watch(ctx context.Context) {
	for range c.db.Watch(ctx, database.TableAnnouncements) {
		c.refresh()
	}
}

func (c *AnnouncementsController) refresh() {
	announcements, err := c.db.AnnouncementRepo().FindAll()
	if err != nil {
		c.logger.Error().Err(errs.NewStoreErr("load", "announcements", err)).Msg("refresh failed")
		return
	}

	c.mu.Lock()
	c.announcements = announcements
	c.mu.Unlock()
	c.signal()
}

func (c *AnnouncementsController) signal() {
	select {
	case c.updates <- struct{}{}:
	default:
	}
}
