package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/campusly/campusly-data/config"
	"github.com/campusly/campusly-data/controllers"
	"github.com/campusly/campusly-data/database"
	"github.com/campusly/campusly-data/prefs"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file loaded")
	}

	c := config.New()
	if config.GetBool(c, "LOG_PRETTY", true) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	dbPath := config.GetString(c, "CAMPUSLY_DB", "campusly.db")
	prefsPath := config.GetString(c, "CAMPUSLY_PREFS", "campusly_prefs.json")

	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", dbPath).Msg("opening database failed")
	}

	store, err := prefs.Open(prefsPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", prefsPath).Msg("opening preference store failed")
	}

	data := database.New(db)

	announcements := controllers.NewAnnouncementsController(data, store)
	defer announcements.Close()
	events := controllers.NewEventsController(data)
	defer events.Close()
	places := controllers.NewPlacesController(data, store)
	defer places.Close()
	groups := controllers.NewStudyGroupsController(data, store)
	defer groups.Close()

	log.Info().
		Int("announcements", len(announcements.Announcements())).
		Int("events", len(events.Events())).
		Int("places", len(places.Places())).
		Int("groups", len(groups.Groups())).
		Int("joined", len(groups.Joined())).
		Msg("store ready")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Log every store change until interrupted.
	go func() {
		for table := range data.Watch(ctx) {
			log.Info().Str("table", table).Msg("store changed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
}
