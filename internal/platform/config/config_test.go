package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"LISTEN_ADDR", "PREDICT_URL", "PREDICT_TIMEOUT", "DEBOUNCE_INTERVAL",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "PREDICT_CACHE_TTL", "PREDICT_CACHE_NAMESPACE",
		"CORS_ALLOW_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "http://localhost:8000/predict", cfg.PredictURL)
	assert.Equal(t, 10*time.Second, cfg.PredictTimeout)
	assert.Equal(t, 300*time.Millisecond, cfg.DebounceInterval)
	assert.Equal(t, "", cfg.RedisAddr())
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "predict", cfg.CacheNamespace)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("PREDICT_URL", "http://ml.internal/predict")
	t.Setenv("PREDICT_TIMEOUT", "2s")
	t.Setenv("DEBOUNCE_INTERVAL", "500ms")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("PREDICT_CACHE_TTL", "1m")
	t.Setenv("PREDICT_CACHE_NAMESPACE", "digits")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, ,https://draw.example.com")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "http://ml.internal/predict", cfg.PredictURL)
	assert.Equal(t, 2*time.Second, cfg.PredictTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.DebounceInterval)
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, "digits", cfg.CacheNamespace)
	assert.Equal(t, []string{"http://localhost:3000", "https://draw.example.com"}, cfg.CORSOrigins)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a duration", "soon"},
		{"bare number", "300"},
		{"negative", "-1s"},
		{"zero", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DEBOUNCE_INTERVAL", tt.value)
			assert.Equal(t, 300*time.Millisecond, Load().DebounceInterval)
		})
	}
}
