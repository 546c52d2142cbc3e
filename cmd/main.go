package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"legalmarket/backend/internal/api/handler"
	"legalmarket/backend/internal/booking"
	"legalmarket/backend/internal/catalog"
	"legalmarket/backend/internal/chathub"
	"legalmarket/backend/internal/config"
	"legalmarket/backend/internal/identity"
	"legalmarket/backend/internal/leaderboard"
	"legalmarket/backend/internal/notify"
	"legalmarket/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	return db, rdb
}

func main() {
	log.Println("Starting LegalMarket Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)
	if err := s.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database and Redis connections established, migrations complete.")

	hub := chathub.NewHub(s)
	go hub.Run()
	go hub.ListenEvents()

	bookings := booking.NewService(s)
	if cfg.TelegramToken != "" {
		notifier, err := notify.NewTelegramNotifier(cfg.TelegramToken, s)
		if err != nil {
			log.Printf("Warning: Telegram notifier disabled: %v", err)
		} else {
			bookings.Notify = notifier
		}
	}

	ident := identity.NewService(cfg.JWTSecret)
	cat := catalog.NewService(s)
	lb := leaderboard.NewService(s)

	r := gin.Default()
	h := handler.NewHandler(bookings, cat, lb, ident, hub)
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           cfg.Addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
