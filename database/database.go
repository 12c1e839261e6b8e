package database

import (
	"context"

	"gorm.io/gorm"
)

// Database bundles each repository around a shared GORM database instance
// and a change hub that drives live queries.
type Database struct {
	db  *gorm.DB
	hub *changeHub

	placeRepo             *PlaceRepo
	eventRepo             *EventRepo
	announcementRepo      *AnnouncementRepo
	studyGroupRepo        *StudyGroupRepo
	groupAnnouncementRepo *GroupAnnouncementRepo
	groupTaskRepo         *GroupTaskRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance.
func New(db *gorm.DB) Database {
	hub := newChangeHub()
	d := newWith(db, hub)
	d.hub = hub
	return d
}

func newWith(db *gorm.DB, changes notifier) Database {
	return Database{
		db:                    db,
		placeRepo:             newPlaceRepo(db, changes),
		eventRepo:             newEventRepo(db, changes),
		announcementRepo:      newAnnouncementRepo(db, changes),
		studyGroupRepo:        newStudyGroupRepo(db, changes),
		groupAnnouncementRepo: newGroupAnnouncementRepo(db, changes),
		groupTaskRepo:         newGroupTaskRepo(db, changes),
	}
}

// Accessor methods for each repository

func (d Database) PlaceRepo() *PlaceRepo {
	return d.placeRepo
}

func (d Database) EventRepo() *EventRepo {
	return d.eventRepo
}

func (d Database) AnnouncementRepo() *AnnouncementRepo {
	return d.announcementRepo
}

func (d Database) StudyGroupRepo() *StudyGroupRepo {
	return d.studyGroupRepo
}

func (d Database) GroupAnnouncementRepo() *GroupAnnouncementRepo {
	return d.groupAnnouncementRepo
}

func (d Database) GroupTaskRepo() *GroupTaskRepo {
	return d.groupTaskRepo
}

// Watch emits the name of each table that changes, starting now. The channel
// closes when ctx is cancelled. With no tables named, every table is
// watched.
func (d Database) Watch(ctx context.Context, tables ...string) <-chan string {
	return d.hub.subscribe(ctx, tables...)
}

// Transaction runs fn against repositories bound to a single transaction.
// Change notifications raised inside fn are held back and delivered to
// watchers only after a successful commit, so live queries never observe a
// half-applied write. Watch must not be called on the transaction-bound
// Database.
func (d Database) Transaction(fn func(tx Database) error) error {
	rec := &recordingNotifier{}

	err := d.db.Transaction(func(tx *gorm.DB) error {
		return fn(newWith(tx, rec))
	})
	if err != nil {
		return err
	}

	for _, table := range rec.changed() {
		d.hub.notify(table)
	}
	return nil
}
