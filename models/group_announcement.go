package models

import "time"

// GroupAnnouncement is a notice inside a single study group. Lists are
// ordered pinned-first, then newest-first.
type GroupAnnouncement struct {
	ID        int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	GroupID   int64      `json:"group_id" gorm:"not null;index"`
	Title     string     `json:"title" gorm:"type:text;not null"`
	Body      string     `json:"body" gorm:"type:text"`
	Pinned    bool       `json:"pinned"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	EditedAt  *time.Time `json:"edited_at,omitempty"`
}

func (GroupAnnouncement) TableName() string { return "group_announcements" }
