package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

// Int64 reads a numeric setting, falling back when unset or malformed.
func Int64(key string, fallback int64) int64 {
	raw := Config(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("Warning: invalid value %q for %s, using default %d", raw, key, fallback)
		return fallback
	}
	return value
}
