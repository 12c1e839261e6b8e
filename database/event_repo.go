package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/campusly/campusly-data/models"
)

type EventRepo struct {
	db      *gorm.DB
	changes notifier
}

func newEventRepo(db *gorm.DB, changes notifier) *EventRepo {
	return &EventRepo{db, changes}
}

// FindAll returns all events ordered by date then time
func (r *EventRepo) FindAll() ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.Order("date, time").Find(&events).Error
	return events, err
}

// FindByID returns an event by its ID, or nil when no such event exists
func (r *EventRepo) FindByID(id int64) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Search returns events whose name, location or description contains the
// query
func (r *EventRepo) Search(query string) ([]*models.Event, error) {
	var events []*models.Event
	pattern := "%" + query + "%"
	err := r.db.
		Where("name LIKE ? OR location LIKE ? OR description LIKE ?", pattern, pattern, pattern).
		Order("date, time").
		Find(&events).Error
	return events, err
}

// ByCategory returns events in the given category
func (r *EventRepo) ByCategory(category string) ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.
		Where("category = ?", category).
		Order("date, time").
		Find(&events).Error
	return events, err
}

// ByDate returns events falling on one date. Dates are compared as stored
// text, so malformed values simply never match.
func (r *EventRepo) ByDate(date string) ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.
		Where("date = ?", date).
		Order("time").
		Find(&events).Error
	return events, err
}

// ByDateRange returns events between start and end inclusive
func (r *EventRepo) ByDateRange(start, end string) ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.
		Where("date BETWEEN ? AND ?", start, end).
		Order("date, time").
		Find(&events).Error
	return events, err
}

// Going returns the events the student has RSVPed to
func (r *EventRepo) Going() ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.
		Where("rsvp = ?", true).
		Order("date, time").
		Find(&events).Error
	return events, err
}

// Add inserts a new event into the database
func (r *EventRepo) Add(event *models.Event) error {
	if err := r.db.Create(event).Error; err != nil {
		return err
	}
	r.changes.notify(TableEvents)
	return nil
}

// Update updates an existing event in the database
func (r *EventRepo) Update(event *models.Event) error {
	if err := r.db.Save(event).Error; err != nil {
		return err
	}
	r.changes.notify(TableEvents)
	return nil
}

// Delete removes an event from the database by id
func (r *EventRepo) Delete(id int64) error {
	if err := r.db.Delete(&models.Event{}, id).Error; err != nil {
		return err
	}
	r.changes.notify(TableEvents)
	return nil
}
