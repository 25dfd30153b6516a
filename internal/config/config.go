package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	AppEnv     string
	ServerPort string

	// Database
	PostgresDSN string

	// Redis (optional; in-memory cache is used when empty)
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Auth
	JWTSecret  string
	SessionTTL time.Duration

	// Jobs
	TireExpiryInterval time.Duration
}

func Load() *Config {
	// optional .env for local development
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		ServerPort:         getEnv("PORT", "8080"),
		PostgresDSN:        getEnv("PG_DSN", ""),
		RedisHost:          getEnv("REDIS_HOST", ""),
		RedisPort:          getEnv("REDIS_PORT", "6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		SessionTTL:         getEnvDuration("SESSION_TTL", 12*time.Hour),
		TireExpiryInterval: getEnvDuration("TIRE_EXPIRY_INTERVAL", time.Hour),
	}

	if cfg.PostgresDSN == "" {
		host := getEnv("PG_HOST", "localhost")
		port := getEnv("PG_PORT", "5432")
		user := getEnv("PG_USER", "frotagest")
		password := getEnv("PG_PASSWORD", "")
		dbname := getEnv("PG_DB", "frotagest")
		cfg.PostgresDSN = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			user, password, host, port, dbname)
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}
