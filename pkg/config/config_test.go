package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, 10*time.Minute, cfg.WeatherCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.ExternalAPITimeout)
	assert.Equal(t, 8, cfg.MeasuredClubThreshold)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CorsOrigins)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("MEASURED_CLUB_THRESHOLD", "6")
	t.Setenv("WEATHER_CACHE_TTL", "30s")
	t.Setenv("CORS_ORIGINS", "https://caddie.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, 6, cfg.MeasuredClubThreshold)
	assert.Equal(t, 30*time.Second, cfg.WeatherCacheTTL)
	assert.Equal(t, []string{"https://caddie.example"}, cfg.CorsOrigins)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Env:                      "development",
			DatabaseDriver:           "sqlite",
			DatabaseURL:              "file::memory:",
			MeasuredClubThreshold:    8,
			RateLimitRPS:             10,
			RateLimitBurst:           20,
			WeatherRequestsPerMinute: 60,
			JWTSecret:                "your-secret-key",
		}
	}

	cfg := base()
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.DatabaseDriver = "mysql"
	assert.ErrorContains(t, cfg.Validate(), "DATABASE_DRIVER")

	cfg = base()
	cfg.MeasuredClubThreshold = 0
	assert.ErrorContains(t, cfg.Validate(), "MEASURED_CLUB_THRESHOLD")

	cfg = base()
	cfg.Env = "production"
	assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET")
}
