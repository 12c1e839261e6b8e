package models

// Announcement is a campus-wide notice. Seeded announcements ship with the
// app and are immutable: the store refuses updates and deletes on them.
type Announcement struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Title    string `json:"title" gorm:"type:text;not null"`
	Message  string `json:"message" gorm:"type:text"`
	Link     string `json:"link" gorm:"type:text"`
	IsSeeded bool   `json:"is_seeded" gorm:"index"`
}

func (Announcement) TableName() string { return "announcements" }
