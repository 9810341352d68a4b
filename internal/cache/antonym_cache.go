package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/spacesedan/positivizer/internal/metrics"
	"github.com/spacesedan/positivizer/internal/positivizer"
	"golang.org/x/sync/singleflight"
)

const KeyPrefix = "positivizer:antonyms:"

// Store is the key/value backend behind the cache. Get reports found=false
// for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// AntonymCache memoizes an AntonymSource in a Store. Store failures are
// logged and the lookup falls through to the source.
type AntonymCache struct {
	source  positivizer.AntonymSource
	store   Store
	ttl     time.Duration
	metrics *metrics.Metrics
	group   singleflight.Group
}

var _ positivizer.AntonymSource = (*AntonymCache)(nil)

func NewAntonymCache(source positivizer.AntonymSource, store Store, ttl time.Duration, m *metrics.Metrics) *AntonymCache {
	return &AntonymCache{
		source:  source,
		store:   store,
		ttl:     ttl,
		metrics: m,
	}
}

func (c *AntonymCache) Antonyms(ctx context.Context, word string) ([]string, error) {
	key := KeyPrefix + word

	if antonyms, ok := c.lookup(ctx, key); ok {
		return antonyms, nil
	}

	// The shared lookup outlives any single caller; each caller only stops
	// waiting when its own context ends.
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		antonyms, err := c.source.Antonyms(shared, word)
		if err != nil {
			return nil, err
		}
		c.save(shared, key, antonyms)
		return antonyms, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	// shared between singleflight callers
	antonyms := res.Val.([]string)
	return append([]string(nil), antonyms...), nil
}

func (c *AntonymCache) lookup(ctx context.Context, key string) ([]string, bool) {
	raw, found, err := c.store.Get(ctx, key)
	if err != nil {
		c.count("error")
		slog.Warn("[AntonymCache] Cache read failed, using source",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, false
	}
	if !found {
		c.count("miss")
		return nil, false
	}

	var antonyms []string
	if err := json.Unmarshal([]byte(raw), &antonyms); err != nil {
		c.count("error")
		slog.Warn("[AntonymCache] Discarding undecodable cache entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, false
	}

	c.count("hit")
	return antonyms, true
}

func (c *AntonymCache) save(ctx context.Context, key string, antonyms []string) {
	if antonyms == nil {
		antonyms = []string{}
	}

	raw, err := json.Marshal(antonyms)
	if err != nil {
		slog.Error("[AntonymCache] Failed to encode antonyms",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return
	}

	if err := c.store.Set(ctx, key, string(raw), c.ttl); err != nil {
		c.count("error")
		slog.Warn("[AntonymCache] Cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}

func (c *AntonymCache) count(result string) {
	if c.metrics != nil {
		c.metrics.AntonymCacheTotal.WithLabelValues(result).Inc()
	}
}
