package controllers

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/campusly/campusly-data/database"
	"github.com/campusly/campusly-data/errs"
	"github.com/campusly/campusly-data/models"
)

// EventFilter narrows the event list without touching stored data.
type EventFilter string

const (
	FilterAll      EventFilter = "all"
	FilterToday    EventFilter = "today"
	FilterThisWeek EventFilter = "week"
	FilterFree     EventFilter = "free"
	FilterClubs    EventFilter = "clubs"
	FilterAcademic EventFilter = "academic"
)

// EventsController backs the events screens: the full list, the RSVP-only
// subset, and a transient search/filter view.
type EventsController struct {
	db     database.Database
	logger zerolog.Logger

	mu     sync.RWMutex
	events []*models.Event
	search string
	filter EventFilter

	updates chan struct{}
	cancel  context.CancelFunc
}

func NewEventsController(db database.Database) *EventsController {
	c := &EventsController{
		db:      db,
		logger:  log.With().Str("controller", "events").Logger(),
		filter:  FilterAll,
		updates: make(chan struct{}, 1),
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.refresh()
	go c.watch(ctx)
	return c
}

func (c *EventsController) Close() { c.cancel() }

func (c *EventsController) Updates() <-chan struct{} { return c.updates }

// Events returns the full list, ordered by date then time.
func (c *EventsController) Events() []*models.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*models.Event(nil), c.events...)
}

// Going returns the events the student has RSVPed to.
func (c *EventsController) Going() []*models.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var going []*models.Event
	for _, event := range c.events {
		if event.RSVP {
			going = append(going, event)
		}
	}
	return going
}

// SetSearch narrows the filtered view to events matching the query.
func (c *EventsController) SetSearch(query string) {
	c.mu.Lock()
	c.search = query
	c.mu.Unlock()
	c.signal()
}

// SetFilter switches the active filter chip.
func (c *EventsController) SetFilter(filter EventFilter) {
	c.mu.Lock()
	c.filter = filter
	c.mu.Unlock()
	c.signal()
}

// Filtered returns the list after applying search and the active filter.
// Events whose date does not parse are treated as non-matching by the date
// filters, never as an error.
func (c *EventsController) Filtered() []*models.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	var filtered []*models.Event
	for _, event := range c.events {
		if !matchesSearch(event, c.search) {
			continue
		}
		if !matchesFilter(event, c.filter, now) {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered
}

// EventByID returns one event, or nil when it does not exist. Callers
// render absence as a not-found state.
func (c *EventsController) EventByID(id int64) *models.Event {
	event, err := c.db.EventRepo().FindByID(id)
	if err != nil {
		c.logger.Error().Err(errs.NewStoreErr("find", "event", err)).Msg("lookup failed")
		return nil
	}
	return event
}

// Add inserts a new event.
func (c *EventsController) Add(event models.Event) {
	if err := c.db.EventRepo().Add(&event); err != nil {
		c.logger.Error().Err(errs.NewStoreErr("add", "event", err)).Msg("add failed")
		return
	}
	c.refresh()
}

// Update rewrites an event record in full.
func (c *EventsController) Update(event models.Event) {
	if err := c.db.EventRepo().Update(&event); err != nil {
		c.logger.Error().Err(errs.NewStoreErr("update", "event", err)).Msg("update failed")
		return
	}
	c.refresh()
}

// Delete removes an event unconditionally.
func (c *EventsController) Delete(id int64) {
	if err := c.db.EventRepo().Delete(id); err != nil {
		c.logger.Error().Err(errs.NewStoreErr("delete", "event", err)).Msg("delete failed")
		return
	}
	c.refresh()
}

// ToggleRSVP flips the RSVP flag. The attendee counter is independent and
// stays untouched.
func (c *EventsController) ToggleRSVP(id int64) {
	event, err := c.db.EventRepo().FindByID(id)
	if err != nil {
		c.logger.Error().Err(errs.NewStoreErr("find", "event", err)).Msg("rsvp toggle failed")
		return
	}
	if event == nil {
		return
	}

	event.RSVP = !event.RSVP
	if err := c.db.EventRepo().Update(event); err != nil {
		c.logger.Error().Err(errs.NewStoreErr("update", "event", err)).Msg("rsvp toggle failed")
		return
	}
	c.refresh()
}

func (c *EventsController) watch(ctx context.Context) {
	for range c.db.Watch(ctx, database.TableEvents) {
		c.refresh()
	}
}

func (c *EventsController) refresh() {
	events, err := c.db.EventRepo().FindAll()
	if err != nil {
		c.logger.Error().Err(errs.NewStoreErr("load", "events", err)).Msg("refresh failed")
		return
	}

	c.mu.Lock()
	c.events = events
	c.mu.Unlock()
	c.signal()
}

func (c *EventsController) signal() {
	select {
	case c.updates <- struct{}{}:
	default:
	}
}

func matchesSearch(event *models.Event, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	query = strings.ToLower(query)
	return strings.Contains(strings.ToLower(event.Name), query) ||
		strings.Contains(strings.ToLower(event.Location), query) ||
		strings.Contains(strings.ToLower(event.Description), query)
}

func matchesFilter(event *models.Event, filter EventFilter, now time.Time) bool {
	switch filter {
	case FilterToday:
		return isToday(event.Date, now)
	case FilterThisWeek:
		return isThisWeek(event.Date, now)
	case FilterFree:
		for _, tag := range event.Tags {
			if strings.EqualFold(tag, "Free") {
				return true
			}
		}
		return false
	case FilterClubs:
		return strings.EqualFold(event.Category, models.CategoryClubs)
	case FilterAcademic:
		return strings.EqualFold(event.Category, models.CategoryAcademic)
	default:
		return true
	}
}

func isToday(dateString string, now time.Time) bool {
	date, err := time.Parse(models.EventDateLayout, dateString)
	if err != nil {
		return false
	}
	return date.Format(models.EventDateLayout) == now.Format(models.EventDateLayout)
}

func isThisWeek(dateString string, now time.Time) bool {
	date, err := time.Parse(models.EventDateLayout, dateString)
	if err != nil {
		return false
	}
	eventYear, eventWeek := date.ISOWeek()
	nowYear, nowWeek := now.ISOWeek()
	return eventYear == nowYear && eventWeek == nowWeek
}
