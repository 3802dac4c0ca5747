package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DatabaseURL string

	// Redis
	RedisURL string

	// Gemini AI. An empty key is allowed: the gateway then reports itself
	// unavailable and the pipeline degrades to localized text.
	GoogleAPIKey string

	// History cache
	HistoryCacheSize int
	HistoryCacheTTL  int // seconds

	// Storage
	StoragePath string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:             getEnvOrDefault("PORT", "8000"),
		Env:              getEnvOrDefault("ENV", "development"),
		DatabaseURL:      mustGetEnv("DATABASE_URL"),
		RedisURL:         mustGetEnv("REDIS_URL"),
		GoogleAPIKey:     getEnvOrDefault("GOOGLE_API_KEY", ""),
		HistoryCacheSize: getEnvAsIntOrDefault("HISTORY_CACHE_SIZE", 50),
		HistoryCacheTTL:  getEnvAsIntOrDefault("HISTORY_CACHE_TTL_SECONDS", 3600),
		StoragePath:      getEnvOrDefault("STORAGE_PATH", "./uploads"),
		FrontendURL:      getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
