package database

import (
	"fmt"
	stdlog "log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campusly/campusly-data/errs"
	"github.com/campusly/campusly-data/models"
)

// SchemaVersion is stamped into the SQLite file as PRAGMA user_version.
// Bumping it drops and recreates every table on next open: iteration speed
// over data durability while the schema is still moving.
const SchemaVersion = 8

// Open opens (or creates) the single local database file, recreates the
// schema destructively when the stored version does not match, and migrates
// all tables.
func Open(path string) (*gorm.DB, error) {
	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, errs.NewStoreErr("open", "database", err)
	}

	var version int
	if err := db.Raw("PRAGMA user_version").Scan(&version).Error; err != nil {
		return nil, errs.NewStoreErr("read schema version of", "database", err)
	}

	if version != SchemaVersion {
		if err := dropAllTables(db); err != nil {
			return nil, err
		}
	}

	if err := db.AutoMigrate(
		&models.Place{},
		&models.Event{},
		&models.Announcement{},
		&models.StudyGroup{},
		&models.GroupMembership{},
		&models.GroupAnnouncement{},
		&models.GroupTask{},
	); err != nil {
		return nil, errs.NewStoreErr("migrate", "database", err)
	}

	if err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)).Error; err != nil {
		return nil, errs.NewStoreErr("stamp schema version of", "database", err)
	}

	return db, nil
}

// dropAllTables removes every table, children before parents so foreign
// keys never block the drop.
func dropAllTables(db *gorm.DB) error {
	migrator := db.Migrator()
	for _, model := range []interface{}{
		&models.GroupMembership{},
		&models.GroupAnnouncement{},
		&models.GroupTask{},
		&models.StudyGroup{},
		&models.Announcement{},
		&models.Event{},
		&models.Place{},
	} {
		if !migrator.HasTable(model) {
			continue
		}
		if err := migrator.DropTable(model); err != nil {
			return errs.NewStoreErr("drop table for", "database", err)
		}
	}
	return nil
}
