// Package predictor provides a client for the remote digit classification endpoint.
package predictor

import (
	"time"

	"digit_canvas/internal/platform/config"
)

// Config holds configuration for the prediction client.
type Config struct {
	URL     string        // Full endpoint URL (e.g., "http://localhost:8000/predict")
	Timeout time.Duration // HTTP request timeout
}

// ConfigFrom extracts the prediction client settings from the application config.
func ConfigFrom(cfg config.Config) Config {
	return Config{
		URL:     cfg.PredictURL,
		Timeout: cfg.PredictTimeout,
	}
}
