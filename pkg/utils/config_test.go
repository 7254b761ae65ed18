package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "arte-booking", config.App.Name)
	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, []string{"*"}, config.App.AllowedOrigins)
	assert.Equal(t, "postgres", config.Database.Driver)
	assert.Equal(t, int32(10), config.Database.MaxConns)
	assert.True(t, config.Database.AutoMigrate)
	assert.Equal(t, "disable", config.Database.SSLMode)
	assert.Equal(t, "arte-booking", config.Database.AppName)
	assert.Equal(t, 20, config.RateLimit.Requests)
	assert.Equal(t, time.Minute, config.RateLimit.Window)
	assert.Equal(t, 5*time.Second, config.Booking.CommitTimeout)
	assert.Empty(t, config.Redis.Addr)
	assert.Empty(t, config.Queue.URL)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "Memory")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("BOOKING_COMMIT_TIMEOUT", "2s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, "memory", config.Database.Driver)
	assert.Equal(t, int32(4), config.Database.MaxConns)
	assert.Equal(t, "localhost:6379", config.Redis.Addr)
	assert.Equal(t, 30*time.Second, config.RateLimit.Window)
	assert.Equal(t, 2*time.Second, config.Booking.CommitTimeout)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, config.App.AllowedOrigins)
}
