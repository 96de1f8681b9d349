package main

import (
	"context"
	"log"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"courtwatch/internal/config"
	"courtwatch/internal/database"
	"courtwatch/internal/middleware"
	"courtwatch/internal/modules/account"
	"courtwatch/internal/modules/auth"
	"courtwatch/internal/modules/booking"
	"courtwatch/internal/modules/feed"
	"courtwatch/internal/modules/monitor"
	"courtwatch/internal/modules/notification"
	"courtwatch/internal/modules/settings"
	"courtwatch/internal/modules/venue"
	jwtsvc "courtwatch/internal/pkg/jwt"
	"courtwatch/internal/repository"
)

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

	userRepo := repository.NewUserRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	hub := notification.NewHub()
	defer hub.Close()
	notificationService := notification.NewService(notificationRepo, hub)
	notificationHandler := notification.NewHandler(notificationService, hub)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	accountService := account.NewService(accountRepo)
	accountHandler := account.NewHandler(accountService)

	settingsService := settings.NewService(settingsRepo)
	settingsHandler := settings.NewHandler(settingsService)

	venueService := venue.NewService(venueRepo)
	venueHandler := venue.NewHandler(venueService)

	feedStore := feed.NewStore()
	feedHandler := feed.NewHandler(feedStore)

	// One mutex linearizes user booking actions against monitor ticks.
	var mu sync.Mutex

	bookingService := booking.NewService(bookingRepo, venueRepo, accountService, feedStore, notificationService, &mu)
	bookingHandler := booking.NewHandler(bookingService)

	engine := monitor.New(
		bookingRepo,
		feedStore,
		feedStore,
		settingsService,
		accountService,
		notificationService,
		cfg.MonitorInterval,
		&mu,
	)
	feedStore.OnAvailabilityChange(engine.Poke)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go engine.Run(ctx)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))

		authHandler.RegisterRoutes(v1, protected)
		venueHandler.RegisterRoutes(v1)
		feedHandler.RegisterRoutes(v1)

		bookingHandler.RegisterRoutes(protected)
		accountHandler.RegisterRoutes(protected)
		settingsHandler.RegisterRoutes(protected)
		notificationHandler.RegisterRoutes(protected)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
