// Package config loads application configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultAuthorizationCode gates agent self-registration when
// CALABASH_AUTH_CODE is not set. Rotate it via the environment.
const DefaultAuthorizationCode = "CALABASH-ELITE-2024"

// Config holds application configuration.
type Config struct {
	AuthorizationCode string
	GeminiAPIKey      string
	DBPath            string // empty = store.DefaultPath()
	DevMode           bool
}

// Load reads configuration from a .env file (if present) and the
// environment.
func Load() Config {
	// Missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	return Config{
		AuthorizationCode: envOrDefault("CALABASH_AUTH_CODE", DefaultAuthorizationCode),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		DBPath:            os.Getenv("CALABASH_DB"),
		DevMode:           os.Getenv("CALABASH_DEV_MODE") == "true",
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
