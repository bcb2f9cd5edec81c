package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	// Addr the admin interface listens on.
	Addr string
	// APIBaseURL is the pharmacy backend root, including the version prefix.
	APIBaseURL string
	// SQLitePath is the local diagnostics database file.
	SQLitePath string
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:       getenv("APP_ADDR", ":3000"),
		APIBaseURL: strings.TrimRight(getenv("API_BASE_URL", "http://localhost:8080/api/v1"), "/"),
		SQLitePath: getenv("SQLITE_PATH", "pharmadesk.db"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
