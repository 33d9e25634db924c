package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// PlacesAPIKeyEnv is the environment variable carrying the places provider credential
const PlacesAPIKeyEnv = "GOOGLE_MAPS_API_KEY"

// Config holds all application configuration
type Config struct {
	Env       string
	Server    ServerConfig
	Places    PlacesConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	OTEL      OTELConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// PlacesConfig holds places provider and pipeline configuration
type PlacesConfig struct {
	Provider       string
	APIKey         string
	BaseURL        string
	Language       string
	RadiusMeters   int
	Categories     []string
	DetailCap      int
	MaxConcurrency int
	HTTPTimeout    time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// RateLimitConfig holds per-client request limits
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerWindow int
	Window            time.Duration
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from a .env file, if present, and environment variables
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		Env: getEnv("ENV", "production"),
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Places: PlacesConfig{
			Provider:       getEnv("PLACES_PROVIDER", "google"),
			APIKey:         os.Getenv(PlacesAPIKeyEnv),
			BaseURL:        getEnv("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
			Language:       getEnv("PLACES_LANGUAGE", "ja"),
			RadiusMeters:   getEnvAsInt("PLACES_RADIUS_METERS", 1600),
			Categories:     getEnvAsList("PLACES_CATEGORIES", []string{"hospital", "doctor"}),
			DetailCap:      getEnvAsInt("PLACES_DETAIL_CAP", 20),
			MaxConcurrency: getEnvAsInt("PLACES_MAX_CONCURRENCY", 8),
			HTTPTimeout:    getEnvAsDuration("PLACES_HTTP_TIMEOUT", 8*time.Second),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			Enabled:           getEnvAsBool("RATE_LIMIT_ENABLED", true),
			RequestsPerWindow: getEnvAsInt("RATE_LIMIT_REQUESTS", 30),
			Window:            getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "nearbycare"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}

	if err := cfg.Places.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// validate rejects settings the pipeline cannot run with. A missing API key
// is reported per request by the handler.
func (c *PlacesConfig) validate() error {
	if c.RadiusMeters <= 0 {
		return fmt.Errorf("PLACES_RADIUS_METERS must be positive, got %d", c.RadiusMeters)
	}
	if c.DetailCap <= 0 {
		return fmt.Errorf("PLACES_DETAIL_CAP must be positive, got %d", c.DetailCap)
	}
	if c.MaxConcurrency <= 0 {
		return fmt.Errorf("PLACES_MAX_CONCURRENCY must be positive, got %d", c.MaxConcurrency)
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("PLACES_CATEGORIES must name at least one category")
	}
	return nil
}

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

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
