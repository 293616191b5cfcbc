package recipe

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cookbook/internal/db"
)

// store is the consumer interface for the source cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// CachedSource caches the raw document of an inner source in a key-value store.
// Cache failures are logged and never fail a fetch.
type CachedSource struct {
	inner      Source
	store      store
	keyPrefix  string
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// NewCachedSource creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), may be nil.
func NewCachedSource(
	inner Source,
	s store,
	keyPrefix string,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedSource {
	return &CachedSource{
		inner:      inner,
		store:      s,
		keyPrefix:  keyPrefix,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Name reports the inner source name; the cache is transparent.
func (c *CachedSource) Name() string { return c.inner.Name() }

// Fetch returns the cached document or fetches and caches it.
func (c *CachedSource) Fetch(ctx context.Context) ([]byte, error) {
	key := c.cacheKey()

	if data, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return data, nil
	}
	c.incCache("miss")

	data, err := c.inner.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", c.inner.Name(), err)
	}

	if json.Valid(data) {
		c.putToCache(ctx, key, data)
	}
	return data, nil
}

// Invalidate drops the cached document so the next Fetch hits the inner source.
func (c *CachedSource) Invalidate(ctx context.Context) error {
	if err := c.store.Del(ctx, c.cacheKey()); err != nil {
		return fmt.Errorf("invalidate source cache: %w", err)
	}
	return nil
}

func (c *CachedSource) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedSource) cacheKey() string {
	h := sha256.Sum256([]byte(c.inner.Name()))
	return c.keyPrefix + "source:" + hex.EncodeToString(h[:])
}

func (c *CachedSource) getFromCache(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached recipe document", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	if len(data) == 0 || !json.Valid(data) {
		c.logger.Warn("Discarding unreadable cached recipe document", zap.String("key", key))
		return nil, false
	}
	return data, true
}

func (c *CachedSource) putToCache(ctx context.Context, key string, data []byte) {
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache recipe document", zap.String("key", key), zap.Error(err))
	}
}
