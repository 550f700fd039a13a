package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Logging
	LogLevel string
	LogFile  string

	// Sessions
	SessionStore  string
	SessionTTL    time.Duration
	SessionSecret string

	// Redis
	RedisURL string

	// Study aids
	QuestionCount int
	MinMCQ        int
	FlashcardSeed int
	MaxUploadMB   int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		Env:           getEnvOrDefault("ENV", "development"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		LogFile:       getEnvOrDefault("LOG_FILE", ""),
		SessionStore:  getEnvOrDefault("SESSION_STORE", StoreMemory),
		SessionTTL:    time.Duration(getEnvAsIntOrDefault("SESSION_TTL_MINUTES", 120)) * time.Minute,
		SessionSecret: mustGetEnv("SESSION_SECRET"),
		QuestionCount: getEnvAsIntOrDefault("QUESTION_COUNT", 6),
		MinMCQ:        getEnvAsIntOrDefault("MIN_MCQ", 5),
		FlashcardSeed: getEnvAsIntOrDefault("FLASHCARD_SEED", 5),
		MaxUploadMB:   getEnvAsIntOrDefault("MAX_UPLOAD_MB", 20),
		FrontendURL:   getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	switch cfg.SessionStore {
	case StoreRedis:
		cfg.RedisURL = mustGetEnv("REDIS_URL")
	case StoreMemory:
		cfg.RedisURL = getEnvOrDefault("REDIS_URL", "")
	default:
		panic(fmt.Sprintf("SESSION_STORE must be %q or %q, got %q", StoreMemory, StoreRedis, cfg.SessionStore))
	}

	return cfg
}

// MaxUploadBytes is the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return defaultVal
	}
	return n
}
