// Package cache provides caching decorators for outbound service clients.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"digit_canvas/internal/feature/canvas/domain/entity"
	"digit_canvas/internal/feature/canvas/usecase"
)

// cachedPrediction is the JSON shape stored in Redis.
type cachedPrediction struct {
	Label     string `json:"label"`
	ImageData string `json:"image_data"`
}

// CachingPredictor decorates a Predictor with Redis caching.
// Identical feature vectors reuse the stored prediction instead of calling the remote service.
type CachingPredictor struct {
	inner     usecase.Predictor
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingPredictorがPredictorを実装していることをコンパイル時に検証します。
var _ usecase.Predictor = (*CachingPredictor)(nil)

// NewCachingPredictor decorates a Predictor with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "predict".
func NewCachingPredictor(rdb *redis.Client, ttl time.Duration, inner usecase.Predictor, namespace string) *CachingPredictor {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "predict"
	}
	return &CachingPredictor{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Predict checks the cache first, then falls back to the inner predictor.
// Failed predictions are never cached.
func (c *CachingPredictor) Predict(ctx context.Context, features entity.FeatureVector) (entity.Prediction, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Predict(ctx, features)
	}

	key := c.cacheKey(features)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var hit cachedPrediction
		if err := json.Unmarshal(b, &hit); err == nil {
			return entity.Prediction{Label: hit.Label, ImageData: hit.ImageData}, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the remote service
	out, err := c.inner.Predict(ctx, features)
	if err != nil {
		return entity.Prediction{}, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(cachedPrediction{Label: out.Label, ImageData: out.ImageData}); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey hashes the exact bit patterns of the 64 values, so only identical vectors share a key.
func (c *CachingPredictor) cacheKey(features entity.FeatureVector) string {
	h := sha256.New()
	var buf [8]byte
	for _, v := range features {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	return safe(c.namespace) + ":" + hex.EncodeToString(h.Sum(nil))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
