package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/campusly/campusly-data/models"
)

type PlaceRepo struct {
	db      *gorm.DB
	changes notifier
}

func newPlaceRepo(db *gorm.DB, changes notifier) *PlaceRepo {
	return &PlaceRepo{db, changes}
}

// FindAll returns all places ordered by name
func (r *PlaceRepo) FindAll() ([]*models.Place, error) {
	var places []*models.Place
	err := r.db.Order("name").Find(&places).Error
	return places, err
}

// FindByID returns a place by its ID, or nil when no such place exists.
// Absence is an expected outcome, not an error.
func (r *PlaceRepo) FindByID(id int64) (*models.Place, error) {
	var place models.Place
	err := r.db.First(&place, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// Search returns places whose name or campus contains the query
func (r *PlaceRepo) Search(query string) ([]*models.Place, error) {
	var places []*models.Place
	pattern := "%" + query + "%"
	err := r.db.
		Where("name LIKE ? OR campus LIKE ?", pattern, pattern).
		Order("name").
		Find(&places).Error
	return places, err
}

// Upsert inserts the place when its identity is unset and updates it
// otherwise, returning the identity either way.
func (r *PlaceRepo) Upsert(place *models.Place) (int64, error) {
	if place.ID == 0 {
		if err := r.db.Create(place).Error; err != nil {
			return 0, err
		}
	} else {
		if err := r.db.Save(place).Error; err != nil {
			return 0, err
		}
	}
	r.changes.notify(TablePlaces)
	return place.ID, nil
}

// Delete removes a place from the database by id
func (r *PlaceRepo) Delete(id int64) error {
	if err := r.db.Delete(&models.Place{}, id).Error; err != nil {
		return err
	}
	r.changes.notify(TablePlaces)
	return nil
}
