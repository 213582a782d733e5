package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config stores the application configuration. Values come from the
// environment (optionally via a .env file) with defaults, so the binary
// runs with no configuration at all next to a catalog file.
type Config struct {
	ListenAddr   string // HTTP listen address
	CatalogPath  string // Path to the catalog CSV file
	WatchCatalog bool   // Reload the catalog when the CSV changes
	DefaultK     int    // Recommendation count when the request omits k
	MaxK         int    // Upper bound on caller-supplied k

	// Logging
	LogLevel      string
	LogPath       string // Empty means console only
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an environment variable as int or returns a default value.
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool gets an environment variable as bool or returns a default value.
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// godotenv.Load() will not override variables already set in the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env, relying on existing environment variables and defaults.")
	}

	return &Config{
		ListenAddr:   getEnv("SERVER_ADDR", ":8080"),
		CatalogPath:  getEnv("CATALOG_PATH", "data/spotify_tracks.csv"),
		WatchCatalog: getEnvBool("CATALOG_WATCH", true),
		DefaultK:     getEnvInt("RECOMMEND_DEFAULT_K", 10),
		MaxK:         getEnvInt("RECOMMEND_MAX_K", 100),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogPath:       getEnv("LOG_PATH", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
	}
}
