package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/campusly/campusly-data/models"
)

type GroupAnnouncementRepo struct {
	db      *gorm.DB
	changes notifier
}

func newGroupAnnouncementRepo(db *gorm.DB, changes notifier) *GroupAnnouncementRepo {
	return &GroupAnnouncementRepo{db, changes}
}

// ByGroup returns one group's announcements, pinned first, then newest
// first
func (r *GroupAnnouncementRepo) ByGroup(groupID int64) ([]*models.GroupAnnouncement, error) {
	var announcements []*models.GroupAnnouncement
	err := r.db.
		Where("group_id = ?", groupID).
		Order("pinned DESC, created_at DESC").
		Find(&announcements).Error
	return announcements, err
}

// FindByID returns a group announcement by its ID, or nil when no such
// announcement exists
func (r *GroupAnnouncementRepo) FindByID(id int64) (*models.GroupAnnouncement, error) {
	var announcement models.GroupAnnouncement
	err := r.db.First(&announcement, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

// Add inserts a new announcement into a group
func (r *GroupAnnouncementRepo) Add(announcement *models.GroupAnnouncement) error {
	if err := r.db.Create(announcement).Error; err != nil {
		return err
	}
	r.changes.notify(TableGroupAnnouncements)
	return nil
}

// Update updates an announcement and stamps its edit time
func (r *GroupAnnouncementRepo) Update(announcement *models.GroupAnnouncement) error {
	now := time.Now()
	announcement.EditedAt = &now
	if err := r.db.Save(announcement).Error; err != nil {
		return err
	}
	r.changes.notify(TableGroupAnnouncements)
	return nil
}

// SetPinned pins or unpins an announcement
func (r *GroupAnnouncementRepo) SetPinned(id int64, pinned bool) error {
	err := r.db.Model(&models.GroupAnnouncement{}).
		Where("id = ?", id).
		Update("pinned", pinned).Error
	if err != nil {
		return err
	}
	r.changes.notify(TableGroupAnnouncements)
	return nil
}

// Delete removes a group announcement by id
func (r *GroupAnnouncementRepo) Delete(id int64) error {
	if err := r.db.Delete(&models.GroupAnnouncement{}, id).Error; err != nil {
		return err
	}
	r.changes.notify(TableGroupAnnouncements)
	return nil
}
