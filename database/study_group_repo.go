package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/campusly/campusly-data/models"
)

type StudyGroupRepo struct {
	db      *gorm.DB
	changes notifier
}

func newStudyGroupRepo(db *gorm.DB, changes notifier) *StudyGroupRepo {
	return &StudyGroupRepo{db, changes}
}

// FindAll returns all study groups
func (r *StudyGroupRepo) FindAll() ([]*models.StudyGroup, error) {
	var groups []*models.StudyGroup
	err := r.db.Find(&groups).Error
	return groups, err
}

// FindByID returns a study group by its ID, or nil when no such group
// exists
func (r *StudyGroupRepo) FindByID(id int64) (*models.StudyGroup, error) {
	var group models.StudyGroup
	err := r.db.First(&group, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Add inserts a new study group into the database
func (r *StudyGroupRepo) Add(group *models.StudyGroup) error {
	if err := r.db.Create(group).Error; err != nil {
		return err
	}
	r.changes.notify(TableStudyGroups)
	return nil
}

// Delete removes a study group by id. Its announcements, tasks and
// memberships go with it via cascade delete.
func (r *StudyGroupRepo) Delete(id int64) error {
	if err := r.db.Delete(&models.StudyGroup{}, id).Error; err != nil {
		return err
	}
	r.changes.notify(TableStudyGroups)
	r.changes.notify(TableGroupMemberships)
	r.changes.notify(TableGroupAnnouncements)
	r.changes.notify(TableGroupTasks)
	return nil
}

// Joined returns the groups the student is currently a member of, ordered
// by name. A membership row only exists while its group does, so the view
// needs no pruning.
func (r *StudyGroupRepo) Joined() ([]*models.StudyGroup, error) {
	var groups []*models.StudyGroup
	err := r.db.
		Joins("JOIN group_memberships ON group_memberships.group_id = study_groups.id").
		Order("study_groups.name").
		Find(&groups).Error
	return groups, err
}

// IsJoined reports whether a membership row exists for the group
func (r *StudyGroupRepo) IsJoined(groupID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.GroupMembership{}).
		Where("group_id = ?", groupID).
		Count(&count).Error
	return count > 0, err
}

// Join records membership in a group. Joining twice is a no-op.
func (r *StudyGroupRepo) Join(groupID int64) error {
	membership := models.GroupMembership{GroupID: groupID}
	err := r.db.
		Where(models.GroupMembership{GroupID: groupID}).
		FirstOrCreate(&membership).Error
	if err != nil {
		return err
	}
	r.changes.notify(TableGroupMemberships)
	return nil
}

// Leave removes membership in a group. Leaving a group never joined is a
// no-op.
func (r *StudyGroupRepo) Leave(groupID int64) error {
	err := r.db.
		Where("group_id = ?", groupID).
		Delete(&models.GroupMembership{}).Error
	if err != nil {
		return err
	}
	r.changes.notify(TableGroupMemberships)
	return nil
}
