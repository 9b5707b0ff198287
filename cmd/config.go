package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"procurement/internal/adapters/out/postgres"
	"procurement/internal/adapters/out/redis"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisEnabled    bool
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CartTTL         time.Duration
	ProfileCacheTTL time.Duration

	JWTSecret          string
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int

	StaleOrderAfter    time.Duration
	StaleOrderSchedule string

	LogLevel string
}

var defaults = map[string]any{
	"HTTP_PORT":            "8080",
	"DB_PORT":              "5432",
	"DB_SSLMODE":           "disable",
	"REDIS_ENABLED":        false,
	"REDIS_ADDR":           "localhost:6379",
	"REDIS_DB":             0,
	"CART_TTL":             redis.DefaultCartTTL,
	"PROFILE_CACHE_TTL":    redis.DefaultProfileTTL,
	"CORS_ALLOWED_ORIGINS": "*",
	"RATE_LIMIT_RPS":       20.0,
	"RATE_LIMIT_BURST":     40,
	"STALE_ORDER_AFTER":    48 * time.Hour,
	"STALE_ORDER_SCHEDULE": "0 0 8 * * *",
	"LOG_LEVEL":            "info",
}

// LoadConfig reads an optional .env file and then the environment.
// Environment variables take precedence over .env entries.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	config := Config{
		HTTPPort:   v.GetString("HTTP_PORT"),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSslMode:  v.GetString("DB_SSLMODE"),

		RedisEnabled:    v.GetBool("REDIS_ENABLED"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		RedisDB:         v.GetInt("REDIS_DB"),
		CartTTL:         v.GetDuration("CART_TTL"),
		ProfileCacheTTL: v.GetDuration("PROFILE_CACHE_TTL"),

		JWTSecret:          v.GetString("JWT_SECRET"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimitRPS:       v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:     v.GetInt("RATE_LIMIT_BURST"),

		StaleOrderAfter:    v.GetDuration("STALE_ORDER_AFTER"),
		StaleOrderSchedule: v.GetString("STALE_ORDER_SCHEDULE"),

		LogLevel: v.GetString("LOG_LEVEL"),
	}
	return config, nil
}

// Validate reports every missing or inconsistent setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.DBHost == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if c.RedisEnabled && c.RedisAddr == "" {
		errs = append(errs, errors.New("REDIS_ADDR is required when REDIS_ENABLED is set"))
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) Database() postgres.ConnectionSettings {
	return postgres.ConnectionSettings{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

func (c Config) Redis() redis.ConnectionSettings {
	return redis.ConnectionSettings{Addr: c.RedisAddr, Password: c.RedisPassword, DB: c.RedisDB}
}

// SlogLevel parses LOG_LEVEL (debug, info, warn, error).
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
