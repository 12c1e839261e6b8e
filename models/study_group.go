package models

// StudyGroup represents a student study group. Its announcements, tasks and
// memberships are owned rows: deleting a group cascades to all of them.
type StudyGroup struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text"`

	Announcements []GroupAnnouncement `json:"announcements,omitempty" gorm:"foreignKey:GroupID;references:ID;constraint:OnDelete:CASCADE"`
	Tasks         []GroupTask         `json:"tasks,omitempty" gorm:"foreignKey:GroupID;references:ID;constraint:OnDelete:CASCADE"`
	Memberships   []GroupMembership   `json:"memberships,omitempty" gorm:"foreignKey:GroupID;references:ID;constraint:OnDelete:CASCADE"`
}

func (StudyGroup) TableName() string { return "study_groups" }

// GroupMembership records that the current user has joined a group. Keyed by
// group ID so renames cannot break the association; cascade delete prunes
// memberships of deleted groups without any manual cleanup.
type GroupMembership struct {
	ID      int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	GroupID int64 `json:"group_id" gorm:"not null;uniqueIndex:idx_group_membership_group;constraint:OnDelete:CASCADE"`

	Group StudyGroup `json:"group,omitempty" gorm:"foreignKey:GroupID;references:ID"`
}

func (GroupMembership) TableName() string { return "group_memberships" }
