// Package config loads runtime settings from the environment. The binaries
// call godotenv.Load first, so a local .env file works during development.
package config

import (
	"fmt"
	"os"
)

type Config struct {
	Addr          string
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	TelegramToken string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load assembles the configuration from environment variables.
func Load() *Config {
	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getenv("DB_HOST", "localhost"),
			getenv("DB_USER", "user"),
			getenv("DB_PASSWORD", "password"),
			getenv("DB_NAME", "legalmarketdb"),
			getenv("DB_PORT", "5432"),
		)
	}
	return &Config{
		Addr:          getenv("ADDR", ":8080"),
		PostgresDSN:   dsn,
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     getenv("JWT_SECRET", "dev_secret"),
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}
}
