// Package config loads application settings from environment variables.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config holds every environment-driven setting of the application.
type Config struct {
	ListenAddr       string        // HTTP listen address for cmd/server
	PredictURL       string        // Prediction endpoint (POST)
	PredictTimeout   time.Duration // Whole-request timeout for a submission
	DebounceInterval time.Duration // Minimum gap between submissions while drawing
	CORSOrigins      []string      // Empty keeps the API same-origin only

	RedisHost      string // Empty disables the prediction cache
	RedisPort      string
	RedisPassword  string
	CacheTTL       time.Duration
	CacheNamespace string
}

// Load reads the configuration from the environment, falling back to defaults.
func Load() Config {
	return Config{
		ListenAddr:       getEnv("LISTEN_ADDR", ":8080"),
		PredictURL:       getEnv("PREDICT_URL", "http://localhost:8000/predict"),
		PredictTimeout:   getDuration("PREDICT_TIMEOUT", 10*time.Second),
		DebounceInterval: getDuration("DEBOUNCE_INTERVAL", 300*time.Millisecond),
		CORSOrigins:      getList("CORS_ALLOW_ORIGINS"),
		RedisHost:        os.Getenv("REDIS_HOST"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		CacheTTL:         getDuration("PREDICT_CACHE_TTL", 5*time.Minute),
		CacheNamespace:   getEnv("PREDICT_CACHE_NAMESPACE", "predict"),
	}
}

// RedisAddr returns host:port, or "" when Redis is not configured.
func (c Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getList splits a comma-separated value, dropping blanks.
func getList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// getDuration parses values such as "300ms" or "10s". Invalid values fall back to the default.
func getDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", val, "default", defaultVal)
		return defaultVal
	}
	return d
}
