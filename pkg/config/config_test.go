package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_PlacesDefaults(t *testing.T) {
	t.Setenv(PlacesAPIKeyEnv, "")
	t.Setenv("PLACES_CATEGORIES", "")
	t.Setenv("PLACES_DETAIL_CAP", "")
	t.Setenv("PLACES_RADIUS_METERS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Places.APIKey)
	assert.Equal(t, "google", cfg.Places.Provider)
	assert.Equal(t, 1600, cfg.Places.RadiusMeters)
	assert.Equal(t, []string{"hospital", "doctor"}, cfg.Places.Categories)
	assert.Equal(t, 20, cfg.Places.DetailCap)
	assert.Equal(t, "ja", cfg.Places.Language)
	assert.Equal(t, 8*time.Second, cfg.Places.HTTPTimeout)
}

func TestLoad_PlacesOverrides(t *testing.T) {
	t.Setenv(PlacesAPIKeyEnv, "test-key")
	t.Setenv("PLACES_CATEGORIES", "hospital, pharmacy ,")
	t.Setenv("PLACES_DETAIL_CAP", "5")
	t.Setenv("PLACES_HTTP_TIMEOUT", "2s")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.Places.APIKey)
	assert.Equal(t, []string{"hospital", "pharmacy"}, cfg.Places.Categories)
	assert.Equal(t, 5, cfg.Places.DetailCap)
	assert.Equal(t, 2*time.Second, cfg.Places.HTTPTimeout)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
}

func TestLoad_RejectsNonPositiveCap(t *testing.T) {
	t.Setenv("PLACES_DETAIL_CAP", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestRedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
}
