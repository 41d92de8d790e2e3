package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	AnalyticsURL    string
	RedisURL        string
	CacheTTL        time.Duration
	RequestTimeout  time.Duration
	RateLimit       int
	RateLimitWindow time.Duration
	LogLevel        string
	AllowOrigins    []string
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

func getint(key string, def int) int {
	v, err := strconv.Atoi(getenv(key, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:            getenv("PORT", "8080"),
		AnalyticsURL:    getenv("ANALYTICS_URL", "http://localhost:5000"),
		RedisURL:        os.Getenv("REDIS_URL"), // empty disables the cache
		CacheTTL:        time.Duration(getint("CACHE_TTL_MINUTES", 60)) * time.Minute,
		RequestTimeout:  time.Duration(getint("REQUEST_TIMEOUT_SECONDS", 120)) * time.Second,
		RateLimit:       getint("RATE_LIMIT", 30),
		RateLimitWindow: time.Duration(getint("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		LogLevel:        getenv("LOG_LEVEL", "info"),
		AllowOrigins:    []string{"http://localhost:3000", getenv("WEB_ORIGIN", "http://localhost:8080")},
	}
}
