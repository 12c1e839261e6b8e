package models

import (
	"time"

	"gorm.io/datatypes"
)

// TaskStatus is the tri-state lifecycle of a group task.
type TaskStatus string

const (
	TaskIncomplete TaskStatus = "INCOMPLETE"
	TaskStarted    TaskStatus = "STARTED"
	TaskComplete   TaskStatus = "COMPLETE"
)

// Next returns the status after one user toggle. The cycle is
// INCOMPLETE -> STARTED -> COMPLETE -> INCOMPLETE; unknown values reset
// to INCOMPLETE.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case TaskIncomplete:
		return TaskStarted
	case TaskStarted:
		return TaskComplete
	default:
		return TaskIncomplete
	}
}

// Rank gives the sort priority used by task lists: incomplete before
// started before complete.
func (s TaskStatus) Rank() int {
	switch s {
	case TaskIncomplete:
		return 0
	case TaskStarted:
		return 1
	default:
		return 2
	}
}

// TaskType distinguishes shared group tasks from personal ones.
type TaskType string

const (
	TaskTypeGroup    TaskType = "GROUP"
	TaskTypePersonal TaskType = "PERSONAL"
)

// GroupTask is a to-do inside a study group. The assignee is free text, not
// a user reference.
type GroupTask struct {
	ID           int64                       `json:"id" gorm:"primaryKey;autoIncrement"`
	GroupID      int64                       `json:"group_id" gorm:"not null;index"`
	Type         TaskType                    `json:"type" gorm:"type:text;default:GROUP"`
	Title        string                      `json:"title" gorm:"type:text;not null"`
	Description  string                      `json:"description" gorm:"type:text"`
	AssigneeName *string                     `json:"assignee_name,omitempty" gorm:"type:text"`
	Status       TaskStatus                  `json:"status" gorm:"type:text;index;default:INCOMPLETE"`
	Labels       datatypes.JSONSlice[string] `json:"labels,omitempty"`
	DueAt        *time.Time                  `json:"due_at,omitempty" gorm:"index"`
	CreatedAt    time.Time                   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`
}

func (GroupTask) TableName() string { return "group_tasks" }

// TaskProgress is the aggregate a group screen renders as "done/total".
type TaskProgress struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}
