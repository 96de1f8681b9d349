package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"courtwatch/internal/config"
	"courtwatch/internal/database"
	"courtwatch/internal/domain"
	"courtwatch/internal/repository"
)

var venues = []domain.Venue{
	{ID: "riverside", Name: "Riverside Tennis Club", Address: "123 River Road, London SW1", NumCourts: 4, Latitude: 51.4975, Longitude: -0.1357, Timezone: "Europe/London"},
	{ID: "parkside", Name: "Parkside Sports Centre", Address: "456 Park Avenue, London N1", NumCourts: 4, Latitude: 51.5422, Longitude: -0.1036, Timezone: "Europe/London"},
	{ID: "central", Name: "Central Courts", Address: "789 High Street, London EC1", NumCourts: 4, Latitude: 51.5174, Longitude: -0.0927, Timezone: "Europe/London"},
	{ID: "westend", Name: "West End Tennis", Address: "321 Oxford Street, London W1", NumCourts: 4, Latitude: 51.5155, Longitude: -0.1415, Timezone: "Europe/London"},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	venueRepo := repository.NewVenueRepository(db)
	for i := range venues {
		if err := venueRepo.Upsert(ctx, &venues[i]); err != nil {
			log.Fatalf("seed venue %s: %v", venues[i].ID, err)
		}
		log.Printf("seeded venue %s (%s)", venues[i].ID, venues[i].Name)
	}

	userRepo := repository.NewUserRepository(db)
	if _, err := userRepo.GetByEmail(ctx, "demo@courtwatch.local"); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal(err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		user := &domain.User{
			Name:         "Demo Player",
			Email:        "demo@courtwatch.local",
			PasswordHash: string(hash),
			Role:         "user",
			CreatedAt:    time.Now(),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatal(err)
		}
		log.Printf("seeded demo user id=%d", user.ID)
	}

	settingsRepo := repository.NewSettingsRepository(db)
	current, err := settingsRepo.Get(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if err := settingsRepo.Save(ctx, current); err != nil {
		log.Fatal(err)
	}

	log.Println("seed complete")
}
