// Admin CLI: the out-of-core collaborator that sets the terminal booking
// states (Cancelled, Completed) and inspects the leaderboard.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"legalmarket/backend/internal/config"
	"legalmarket/backend/internal/models"
	"legalmarket/backend/internal/storage"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})

	storageSvc := storage.NewStorageService(db, rdb)

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "cancel":
		setTerminal(storageSvc, models.StatusCancelled)
	case "complete":
		setTerminal(storageSvc, models.StatusCompleted)
	case "adduser":
		if len(os.Args) != 5 {
			fmt.Println("Usage: admin adduser <name> <email> <role>")
			os.Exit(1)
		}
		user := &models.User{Name: os.Args[2], Email: os.Args[3], Role: os.Args[4]}
		if user.Role != models.RoleCitizen && !models.IsProviderRole(user.Role) {
			fmt.Printf("Unknown role %q.\n", user.Role)
			os.Exit(1)
		}
		if err := storageSvc.SaveUser(user); err != nil {
			log.Fatalf("Error saving user: %v", err)
		}
		fmt.Printf("User %s created with id %s.\n", user.Name, user.ID)
	case "leaderboard":
		n := int64(10)
		if len(os.Args) > 2 {
			parsed, err := strconv.ParseInt(os.Args[2], 10, 64)
			if err != nil {
				fmt.Println("Invalid count. Please provide an integer.")
				os.Exit(1)
			}
			n = parsed
		}
		scores, err := storageSvc.TopProviders(n)
		if err != nil {
			log.Fatalf("Error reading leaderboard: %v", err)
		}
		for i, s := range scores {
			fmt.Printf("%2d. %s  %d pts\n", i+1, s.ProviderID, s.Points)
		}
	default:
		usage()
	}
}

func setTerminal(s *storage.Service, status models.BookingStatus) {
	if len(os.Args) != 3 {
		fmt.Printf("Usage: admin %s <booking_id>\n", os.Args[1])
		os.Exit(1)
	}
	bookingID := os.Args[2]
	if err := s.ForceBookingStatus(bookingID, status); err != nil {
		log.Fatalf("Error updating booking: %v", err)
	}
	fmt.Printf("Booking %s is now %s.\n", bookingID, status)
}

func usage() {
	fmt.Println("Usage: admin <cancel|complete|adduser|leaderboard> [args]")
	os.Exit(1)
}
