package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/campusly/campusly-data/errs"
	"github.com/campusly/campusly-data/models"
)

type AnnouncementRepo struct {
	db      *gorm.DB
	changes notifier
}

func newAnnouncementRepo(db *gorm.DB, changes notifier) *AnnouncementRepo {
	return &AnnouncementRepo{db, changes}
}

// FindAll returns all announcements, newest first
func (r *AnnouncementRepo) FindAll() ([]*models.Announcement, error) {
	var announcements []*models.Announcement
	err := r.db.Order("id DESC").Find(&announcements).Error
	return announcements, err
}

// FindByID returns an announcement by its ID, or nil when no such
// announcement exists
func (r *AnnouncementRepo) FindByID(id int64) (*models.Announcement, error) {
	var announcement models.Announcement
	err := r.db.First(&announcement, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

// Add inserts a new announcement into the database
func (r *AnnouncementRepo) Add(announcement *models.Announcement) error {
	if err := r.db.Create(announcement).Error; err != nil {
		return err
	}
	r.changes.notify(TableAnnouncements)
	return nil
}

// Update updates an announcement. Seeded announcements are immutable at
// this layer: the store is left unchanged and ErrImmutableRecord returned,
// so no caller can bypass the rule.
func (r *AnnouncementRepo) Update(announcement *models.Announcement) error {
	existing, err := r.FindByID(announcement.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	if existing.IsSeeded {
		return errs.ErrImmutableRecord
	}

	announcement.IsSeeded = false
	if err := r.db.Save(announcement).Error; err != nil {
		return err
	}
	r.changes.notify(TableAnnouncements)
	return nil
}

// Delete removes an announcement by id. Seeded announcements are kept and
// ErrImmutableRecord returned.
func (r *AnnouncementRepo) Delete(id int64) error {
	existing, err := r.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	if existing.IsSeeded {
		return errs.ErrImmutableRecord
	}

	if err := r.db.Delete(&models.Announcement{}, id).Error; err != nil {
		return err
	}
	r.changes.notify(TableAnnouncements)
	return nil
}
