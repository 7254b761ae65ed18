package utils

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Queue     QueueConfig
	Booking   BookingConfig
}

type AppConfig struct {
	Name           string
	Port           string
	Debug          bool
	LogPath        string
	AllowedOrigins []string
}

// DatabaseConfig.Driver is "postgres" or "memory".
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	SSLMode     string
	AppName     string
	MaxConns    int32
	AutoMigrate bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type QueueConfig struct {
	URL string
}

type BookingConfig struct {
	CommitTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("APP_NAME", "arte-booking")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATE_LIMIT_REQUESTS", 20)
	v.SetDefault("RATE_LIMIT_WINDOW", "1m")
	v.SetDefault("BOOKING_COMMIT_TIMEOUT", "5s")

	// .env is optional, plain environment wins either way
	if _, err := os.Stat(".env"); err == nil {
		v.SetConfigFile(".env")
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:           v.GetString("APP_NAME"),
			Port:           v.GetString("PORT"),
			Debug:          v.GetBool("DEBUG"),
			LogPath:        v.GetString("LOG_PATH"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Driver:      strings.ToLower(v.GetString("DB_DRIVER")),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			Name:        v.GetString("DB_NAME"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			AppName:     v.GetString("APP_NAME"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   v.GetDuration("RATE_LIMIT_WINDOW"),
		},
		Queue: QueueConfig{
			URL: v.GetString("AMQP_URL"),
		},
		Booking: BookingConfig{
			CommitTimeout: v.GetDuration("BOOKING_COMMIT_TIMEOUT"),
		},
	}

	return config, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
