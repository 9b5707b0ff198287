package cmd_test

import (
	"log/slog"
	"testing"
	"time"

	"procurement/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("DB_HOST", "db")
		t.Setenv("JWT_SECRET", "s3cret")

		config, err := cmd.LoadConfig()

		require.NoError(t, err)
		require.NoError(t, config.Validate())
		assert.Equal(t, "8080", config.HTTPPort)
		assert.Equal(t, "5432", config.DBPort)
		assert.False(t, config.RedisEnabled)
		assert.Equal(t, 7*24*time.Hour, config.CartTTL)
		assert.Equal(t, 48*time.Hour, config.StaleOrderAfter)
		assert.Equal(t, []string{"*"}, config.CORSAllowedOrigins)
		assert.Contains(t, config.Database().DSN(), "@db:5432")
		assert.Contains(t, config.Database().DSN(), "sslmode=disable")
	})

	t.Run("should read the environment", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("DB_HOST", "db")
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("REDIS_ENABLED", "true")
		t.Setenv("REDIS_ADDR", "cache:6379")
		t.Setenv("CART_TTL", "24h")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
		t.Setenv("RATE_LIMIT_RPS", "2.5")
		t.Setenv("LOG_LEVEL", "debug")

		config, err := cmd.LoadConfig()

		require.NoError(t, err)
		assert.True(t, config.RedisEnabled)
		assert.Equal(t, "cache:6379", config.Redis().Addr)
		assert.Equal(t, 24*time.Hour, config.CartTTL)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, config.CORSAllowedOrigins)
		assert.InDelta(t, 2.5, config.RateLimitRPS, 0.001)
		level, err := config.SlogLevel()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, level)
	})
}

func TestConfig_Validate(t *testing.T) {
	err := cmd.Config{LogLevel: "loud", RedisEnabled: true}.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "DB_HOST")
	assert.Contains(t, err.Error(), "REDIS_ADDR")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}
