package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/campusly/campusly-data/models"
)

// taskOrder groups by status priority (incomplete, started, complete),
// then ascending due time with undated tasks last.
const taskOrder = "CASE status WHEN 'INCOMPLETE' THEN 0 WHEN 'STARTED' THEN 1 ELSE 2 END, " +
	"CASE WHEN due_at IS NULL THEN 1 ELSE 0 END, due_at"

type GroupTaskRepo struct {
	db      *gorm.DB
	changes notifier
}

func newGroupTaskRepo(db *gorm.DB, changes notifier) *GroupTaskRepo {
	return &GroupTaskRepo{db, changes}
}

// ByGroup returns one group's tasks in task order, narrowed to a single
// status when one is given.
func (r *GroupTaskRepo) ByGroup(groupID int64, status *models.TaskStatus) ([]*models.GroupTask, error) {
	query := r.db.Where("group_id = ?", groupID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var tasks []*models.GroupTask
	err := query.Order(taskOrder).Find(&tasks).Error
	return tasks, err
}

// FindByID returns a task by its ID, or nil when no such task exists
func (r *GroupTaskRepo) FindByID(id int64) (*models.GroupTask, error) {
	var task models.GroupTask
	err := r.db.First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Add inserts a new task into a group
func (r *GroupTaskRepo) Add(task *models.GroupTask) error {
	if task.Status == "" {
		task.Status = models.TaskIncomplete
	}
	if task.Type == "" {
		task.Type = models.TaskTypeGroup
	}
	if err := r.db.Create(task).Error; err != nil {
		return err
	}
	r.changes.notify(TableGroupTasks)
	return nil
}

// Update updates an existing task in the database
func (r *GroupTaskRepo) Update(task *models.GroupTask) error {
	if err := r.db.Save(task).Error; err != nil {
		return err
	}
	r.changes.notify(TableGroupTasks)
	return nil
}

// SetStatus moves a task to the given status
func (r *GroupTaskRepo) SetStatus(id int64, status models.TaskStatus) error {
	err := r.db.Model(&models.GroupTask{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		return err
	}
	r.changes.notify(TableGroupTasks)
	return nil
}

// Delete removes a task from the database by id
func (r *GroupTaskRepo) Delete(id int64) error {
	if err := r.db.Delete(&models.GroupTask{}, id).Error; err != nil {
		return err
	}
	r.changes.notify(TableGroupTasks)
	return nil
}

// Progress returns how many of a group's tasks are complete
func (r *GroupTaskRepo) Progress(groupID int64) (models.TaskProgress, error) {
	var progress models.TaskProgress
	err := r.db.Model(&models.GroupTask{}).
		Select("COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS done, COUNT(*) AS total", models.TaskComplete).
		Where("group_id = ?", groupID).
		Scan(&progress).Error
	return progress, err
}
