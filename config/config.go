package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment variables")
	}
}

// Config returns the value of the given environment key.
func Config(key string) string {
	return os.Getenv(key)
}

// ConfigOr returns the value of key, or def when the key is unset.
func ConfigOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
