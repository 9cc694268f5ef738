// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values for the tripweaver client.
// Values are populated by Load from environment variables.
type Config struct {
	// APIBaseURL is the base URL of the itinerary backend.
	// Defaults to "http://127.0.0.1:8081" (the dev backend).
	APIBaseURL string

	// HTTPTimeout bounds each backend call. Defaults to 90s; itinerary
	// generation sits on an LLM call and is slow. Set HTTP_TIMEOUT_SECONDS
	// to override.
	HTTPTimeout time.Duration

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFile is where structured logs are written. The terminal UI owns
	// stdout, so logs go to a file. Defaults to "tripweaver.log".
	LogFile string

	// Email is the user identity for save/fetch operations. Optional here;
	// it can also be supplied with the -email flag or resolved via login.
	Email string
}

// Load reads configuration from environment variables and returns a Config.
func Load() (Config, error) {
	cfg := Config{
		APIBaseURL: getEnv("TRIPWEAVER_API_URL", "http://127.0.0.1:8081"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFile:    getEnv("TRIPWEAVER_LOG_FILE", "tripweaver.log"),
		Email:      os.Getenv("TRIPWEAVER_EMAIL"),
	}

	secs := getEnv("HTTP_TIMEOUT_SECONDS", "90")
	n, err := strconv.Atoi(secs)
	if err != nil || n <= 0 {
		return Config{}, fmt.Errorf("HTTP_TIMEOUT_SECONDS must be a positive integer, got %q", secs)
	}
	cfg.HTTPTimeout = time.Duration(n) * time.Second

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
