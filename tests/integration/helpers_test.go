//go:build integration

package integration

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/zatekoja/nearbycare/internal/infrastructure/clients/redis"
	"github.com/zatekoja/nearbycare/pkg/config"
)

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

// newTestRedisClient connects to the test Redis or skips the test when it is unreachable
func newTestRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	cfg := &config.RedisConfig{
		Host:     getEnv("TEST_REDIS_HOST", "localhost"),
		Port:     getEnvAsInt("TEST_REDIS_PORT", 6379),
		Password: getEnv("TEST_REDIS_PASSWORD", ""),
		DB:       getEnvAsInt("TEST_REDIS_DB", 0),
	}

	client, err := redis.NewClient(context.Background(), cfg)
	if err != nil {
		t.Skipf("Skipping integration test: Redis unavailable: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}
