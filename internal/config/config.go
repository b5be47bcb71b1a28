package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/perfily/perfily-cli/internal/api"
)

// Config holds all application configuration.
type Config struct {
	APIBaseURL string
	DBPath     string
	LogFile    string
	LogLevel   string
	// PollInterval is how often the payment screen checks whether the
	// full report has been unlocked.
	PollInterval time.Duration
	// PaymentExpiry is how long the payment instructions stay valid
	// before the visitor is sent back to the preview.
	PaymentExpiry time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		APIBaseURL:    getEnv("PERFILY_API_URL", api.DefaultBaseURL),
		DBPath:        getEnv("PERFILY_DB", ""),
		LogFile:       getEnv("PERFILY_LOG_FILE", ""),
		LogLevel:      getEnv("PERFILY_LOG_LEVEL", "info"),
		PollInterval:  time.Duration(getEnvInt("PERFILY_POLL_SECONDS", 15)) * time.Second,
		PaymentExpiry: time.Duration(getEnvInt("PERFILY_PAYMENT_SECONDS", 600)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
