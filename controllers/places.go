package controllers

import (
	"context"
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

// PlacesController backs the campus places screens.
type PlacesController struct {
	db     database.Database
	logger zerolog.Logger

	mu     sync.RWMutex
	places []*models.Place
	search string

	updates chan struct{}
	cancel  context.CancelFunc
}

func NewPlacesController(db database.Database, store *prefs.Store) *PlacesController {
	logger := log.With().Str("controller", "places").Logger()

	c := &PlacesController{
		db:      db,
		logger:  logger,
		updates: make(chan struct{}, 1),
	}

	if err := seeds.EnsurePlaces(db, store, logger); err != nil {
		logger.Error().Err(err).Msg("seeding places failed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.refresh()
	go c.watch(ctx)
	return c
}

func (c *PlacesController) Close() { c.cancel() }

func (c *PlacesController) Updates() <-chan struct{} { return c.updates }

// Places returns the current snapshot, ordered by name.
func (c *PlacesController) Places() []*models.Place {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*models.Place(nil), c.places...)
}

// SetSearch narrows the filtered view to places matching the query.
func (c *PlacesController) SetSearch(query string) {
	c.mu.Lock()
	c.search = query
	c.mu.Unlock()
	c.signal()
}

// Filtered returns places whose name or campus contains the search query.
func (c *PlacesController) Filtered() []*models.Place {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(c.search))
	if query == "" {
		return append([]*models.Place(nil), c.places...)
	}

	var filtered []*models.Place
	for _, place := range c.places {
		if strings.Contains(strings.ToLower(place.Name), query) ||
			strings.Contains(strings.ToLower(place.Campus), query) {
			filtered = append(filtered, place)
		}
	}
	return filtered
}

// PlaceByID returns one place, or nil when it does not exist.
func (c *PlacesController) PlaceByID(id int64) *models.Place {
	place, err := c.db.PlaceRepo().FindByID(id)
	if err != nil {
		c.logger.Error().Err(errs.NewStoreErr("find", "place", err)).Msg("lookup failed")
		return nil
	}
	return place
}

// AddOrUpdate inserts the place when its identity is unset and updates it
// otherwise.
func (c *PlacesController) AddOrUpdate(place models.Place) {
	if _, err := c.db.PlaceRepo().Upsert(&place); err != nil {
		c.logger.Error().Err(errs.NewStoreErr("save", "place", err)).Msg("save failed")
		return
	}
	c.refresh()
}

// Delete removes a place.
func (c *PlacesController) Delete(id int64) {
	if err := c.db.PlaceRepo().Delete(id); err != nil {
		c.logger.Error().Err(errs.NewStoreErr("delete", "place", err)).Msg("delete failed")
		return
	}
	c.refresh()
}

func (c *PlacesController) watch(ctx context.Context) {
	for range c.db.Watch(ctx, database.TablePlaces) {
		c.refresh()
	}
}

func (c *PlacesController) refresh() {
	places, err := c.db.PlaceRepo().FindAll()
	if err != nil {
		c.logger.Error().Err(errs.NewStoreErr("load", "places", err)).Msg("refresh failed")
		return
	}

	c.mu.Lock()
	c.places = places
	c.mu.Unlock()
	c.signal()
}

func (c *PlacesController) signal() {
	select {
	case c.updates <- struct{}{}:
	default:
	}
}
