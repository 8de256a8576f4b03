// Package config loads the process configuration from the environment
// once at startup. A .env file is honored when present.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string
	Port   string

	UpstreamBaseURL string
	// Timeout bounds one upstream attempt.
	Timeout time.Duration
	// Retries is the number of additional attempts after the first.
	Retries int
	// RetryDelay seeds the exponential backoff between attempts.
	RetryDelay time.Duration

	CacheBackend string // "memory" or "redis"
	CacheTTL     time.Duration
	RedisHost    string
	RedisPort    string
	RedisPass    string
	RedisDB      int

	MinLayoverMinutes    int
	MaxLayoverMinutes    int
	MaxConcurrentFetches int
	MaxAnyDestinations   int

	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),

		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", ""),
		Timeout:         getEnvSeconds("TIMEOUT", 30*time.Second),
		Retries:         getEnvInt("RETRIES", 3),
		RetryDelay:      getEnvSeconds("RETRY_DELAY", time.Second),

		CacheBackend: getEnv("CACHE_BACKEND", "memory"),
		CacheTTL:     getEnvSeconds("CACHE_TTL", 900*time.Second),
		RedisHost:    getEnv("REDIS_HOST", "localhost"),
		RedisPort:    getEnv("REDIS_PORT", "6379"),
		RedisPass:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:      getEnvInt("REDIS_DB", 0),

		MinLayoverMinutes:    getEnvInt("MIN_LAYOVER_MINUTES", 90),
		MaxLayoverMinutes:    getEnvInt("MAX_LAYOVER_MINUTES", 360),
		MaxConcurrentFetches: getEnvInt("MAX_CONCURRENT_FETCHES", 8),
		MaxAnyDestinations:   getEnvInt("MAX_ANY_DESTINATIONS", 50),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

func getEnvSeconds(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return defaultValue
	}
	return time.Duration(n) * time.Second
}
