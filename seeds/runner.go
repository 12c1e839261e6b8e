// Package seeds inserts the fixed sample content each feature shows on
// first run. Every seed routine is one transaction guarded by a persisted
// version marker, and concurrent invocations collapse into a single run, so
// racing first launches cannot duplicate the sample set or leave it half
// inserted.
package seeds

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/campusly/campusly-data/database"
	"github.com/campusly/campusly-data/prefs"
)

// Current seed-set versions. Bumping one re-runs that seed on next start.
const (
	announcementsVersion = 1
	placesVersion        = 1
	studyGroupsVersion   = 1
)

// Marker keys in the preference store.
const (
	announcementsKey = "seed.announcements.version"
	placesKey        = "seed.places.version"
	studyGroupsKey   = "seed.study_groups.version"
)

var flight singleflight.Group

// EnsureAnnouncements inserts the sample announcements once per version.
func EnsureAnnouncements(db database.Database, store *prefs.Store, logger zerolog.Logger) error {
	_, err, _ := flight.Do(announcementsKey, func() (interface{}, error) {
		if store.GetInt(announcementsKey, 0) >= announcementsVersion {
			return nil, nil
		}

		announcements := sampleAnnouncements()
		err := db.Transaction(func(tx database.Database) error {
			for _, announcement := range announcements {
				if err := tx.AnnouncementRepo().Add(announcement); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		if err := store.SetInt(announcementsKey, announcementsVersion); err != nil {
			return nil, err
		}
		logger.Info().Int("count", len(announcements)).Msg("seeded announcements")
		return nil, nil
	})
	return err
}

// EnsurePlaces inserts the sample places once per version.
func EnsurePlaces(db database.Database, store *prefs.Store, logger zerolog.Logger) error {
	_, err, _ := flight.Do(placesKey, func() (interface{}, error) {
		if store.GetInt(placesKey, 0) >= placesVersion {
			return nil, nil
		}

		places := samplePlaces()
		err := db.Transaction(func(tx database.Database) error {
			for _, place := range places {
				if _, err := tx.PlaceRepo().Upsert(place); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		if err := store.SetInt(placesKey, placesVersion); err != nil {
			return nil, err
		}
		logger.Info().Int("count", len(places)).Msg("seeded places")
		return nil, nil
	})
	return err
}

// EnsureStudyGroups inserts the sample groups with their announcements and
// tasks once per version. Each group and all of its sub-records land in the
// same transaction as everything else, so a failure rolls the whole seed
// back.
func EnsureStudyGroups(db database.Database, store *prefs.Store, logger zerolog.Logger) error {
	_, err, _ := flight.Do(studyGroupsKey, func() (interface{}, error) {
		if store.GetInt(studyGroupsKey, 0) >= studyGroupsVersion {
			return nil, nil
		}

		samples := sampleStudyGroups(time.Now())
		err := db.Transaction(func(tx database.Database) error {
			for i := range samples {
				sample := &samples[i]
				if err := tx.StudyGroupRepo().Add(&sample.group); err != nil {
					return err
				}
				for j := range sample.announcements {
					sample.announcements[j].GroupID = sample.group.ID
					if err := tx.GroupAnnouncementRepo().Add(&sample.announcements[j]); err != nil {
						return err
					}
				}
				for j := range sample.tasks {
					sample.tasks[j].GroupID = sample.group.ID
					if err := tx.GroupTaskRepo().Add(&sample.tasks[j]); err != nil {
						return err
					}
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		if err := store.SetInt(studyGroupsKey, studyGroupsVersion); err != nil {
			return nil, err
		}
		logger.Info().Int("groups", len(samples)).Msg("seeded study groups")
		return nil, nil
	})
	return err
}
