// Package config provides configuration management functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned by Validate when a setting is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// DateLayout is the calendar date format used for MOCK_SERIES_START
const DateLayout = "2006-01-02"

// Config holds application configuration
type Config struct {
	Port      int
	LogLevel  string
	LogPretty bool
	DevMode   bool

	Wikipedia WikipediaConfig
	LLM       LLMConfig
	Series    SeriesConfig

	TopN int // Number of constituents shown in the weights bar chart
}

// WikipediaConfig configures the REST summary client used by the Q&A box
type WikipediaConfig struct {
	BaseURL string
	Timeout time.Duration
}

// LLMConfig configures the text-generation client used by the chatbot
type LLMConfig struct {
	BaseURL string // Empty uses the provider default
	APIKey  string // Empty disables completion calls
	Model   string
	Timeout time.Duration
	RPM     int // Requests per minute allowed by the limiter
	Burst   int
}

// Enabled reports whether completion calls can be made at all
func (c LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

// SeriesConfig configures the mock index series
type SeriesConfig struct {
	Start   time.Time
	Periods int
	Seed    uint64 // 0 = unseeded
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	start, err := time.Parse(DateLayout, getEnv("MOCK_SERIES_START", "2023-01-01"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse MOCK_SERIES_START: %w", err)
	}

	seed, err := strconv.ParseUint(getEnv("MOCK_SERIES_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse MOCK_SERIES_SEED: %w", err)
	}

	cfg := &Config{
		Port:      getEnvAsInt("PORT", 8080),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnvAsBool("LOG_PRETTY", true),
		DevMode:   getEnvAsBool("DEV_MODE", false),
		Wikipedia: WikipediaConfig{
			BaseURL: strings.TrimRight(getEnv("WIKIPEDIA_BASE_URL", "https://en.wikipedia.org/api/rest_v1"), "/"),
			Timeout: getEnvAsDuration("WIKIPEDIA_TIMEOUT", 10*time.Second),
		},
		LLM: LLMConfig{
			BaseURL: getEnv("LLM_BASE_URL", ""),
			APIKey:  getEnv("LLM_API_KEY", ""),
			Model:   getEnv("LLM_MODEL", "gpt-4o-mini"),
			Timeout: getEnvAsDuration("LLM_TIMEOUT", 30*time.Second),
			RPM:     getEnvAsInt("LLM_RPM", 30),
			Burst:   getEnvAsInt("LLM_BURST", 2),
		},
		Series: SeriesConfig{
			Start:   start,
			Periods: getEnvAsInt("MOCK_SERIES_PERIODS", 100),
			Seed:    seed,
		},
		TopN: getEnvAsInt("TOP_N", 10),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that numeric settings are usable
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.Series.Periods < 1 {
		return fmt.Errorf("%w: MOCK_SERIES_PERIODS must be positive, got %d", ErrInvalidConfig, c.Series.Periods)
	}
	if c.TopN < 1 {
		return fmt.Errorf("%w: TOP_N must be positive, got %d", ErrInvalidConfig, c.TopN)
	}
	if c.LLM.RPM < 1 {
		return fmt.Errorf("%w: LLM_RPM must be positive, got %d", ErrInvalidConfig, c.LLM.RPM)
	}
	if c.LLM.Burst < 1 {
		return fmt.Errorf("%w: LLM_BURST must be positive, got %d", ErrInvalidConfig, c.LLM.Burst)
	}
	if c.Wikipedia.BaseURL == "" {
		return fmt.Errorf("%w: WIKIPEDIA_BASE_URL is empty", ErrInvalidConfig)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
