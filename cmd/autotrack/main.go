package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/autotrackdev/autotrack-rental/internal/auth"
	"github.com/autotrackdev/autotrack-rental/internal/cli"
	"github.com/autotrackdev/autotrack-rental/internal/rental"
	"github.com/autotrackdev/autotrack-rental/internal/seed"
	"github.com/autotrackdev/autotrack-rental/internal/store"
)

func main() {
	// Optional .env; environment variables win either way.
	_ = godotenv.Load()

	configureLogging()

	data, err := loadSeedData()
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	vehicles := store.NewVehicleRegistry()
	users := store.NewUserDirectory()
	bookings := store.NewBookingLedger(vehicles)

	if err := data.Apply(vehicles, users); err != nil {
		log.Fatalf("Failed to apply seed data: %v", err)
	}
	log.WithFields(log.Fields{
		"vehicles": len(data.Vehicles),
		"users":    len(data.Users),
	}).Info("seed data loaded")

	sessions, err := auth.NewService()
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	service := rental.NewService(vehicles, users, bookings, sessions)
	cli.New(service, os.Stdin, os.Stdout).Run()
}

func configureLogging() {
	level, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = log.WarnLevel // keep the console menus readable by default
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
}

func loadSeedData() (*seed.Data, error) {
	if path := os.Getenv("SEED_FILE"); path != "" {
		return seed.Load(path)
	}
	return seed.Default(), nil
}
