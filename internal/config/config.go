package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Port        string
	DatabaseURL string
	WebRoot     string

	SessionBackend string
	SessionSecret  string
	SessionTTL     time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AuthUser     string
	AuthPassword string
}

// Load builds Config from the environment, reading a .env file first if one
// exists.
func Load() *Config {
	// Ignore error if .env file doesn't exist (e.g. in production)
	_ = godotenv.Load()

	connString := getEnv("DATABASE_URL", "")
	if connString == "" {
		// Fallback to individual vars
		connString = "postgres://" + getEnv("POSTGRES_USER", "postgres") + ":" +
			getEnv("POSTGRES_PASSWORD", "postgres") + "@" +
			getEnv("POSTGRES_HOST", "localhost") + ":" +
			getEnv("POSTGRES_PORT", "5432") + "/" +
			getEnv("POSTGRES_DB", "albumdb") + "?sslmode=disable"
	}

	return &Config{
		Port:           getEnv("PORT", "4173"),
		DatabaseURL:    connString,
		WebRoot:        getEnv("WEB_ROOT", "web"),
		SessionBackend: getEnv("SESSION_BACKEND", "memory"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_HOURS", 12)) * time.Hour,
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		AuthUser:       getEnv("AUTH_USER", "admin"),
		AuthPassword:   getEnv("AUTH_PASSWORD", "album123"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
