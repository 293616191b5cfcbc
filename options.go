package cookbook

import (
	"time"

	"go.uber.org/zap"
)

// Option configures Open.
type Option func(*openConfig)

type openConfig struct {
	file        string
	url         string
	document    []byte
	hasDocument bool
	httpTimeout time.Duration
	bounds      *Criteria
	valkeyAddr  string
	valkeyPass  string
	cacheTTL    time.Duration
	keyPrefix   string
	logger      *zap.Logger
}

// WithFile loads the collection from a JSON file.
func WithFile(path string) Option {
	return func(c *openConfig) { c.file = path }
}

// WithURL loads the collection with an HTTP GET.
func WithURL(url string) Option {
	return func(c *openConfig) { c.url = url }
}

// WithHTTPTimeout bounds the WithURL request. Default 10s.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *openConfig) { c.httpTimeout = d }
}

// WithDocument loads the collection from an in-memory JSON document.
func WithDocument(data []byte) Option {
	return func(c *openConfig) {
		c.document = data
		c.hasDocument = true
	}
}

// WithBounds sets the calorie and protein ranges that Reset returns.
func WithBounds(calories, protein Range) Option {
	return func(c *openConfig) {
		c.bounds = &Criteria{Calories: calories, Protein: protein}
	}
}

// WithValkey caches the fetched document in Valkey.
func WithValkey(addr, password string) Option {
	return func(c *openConfig) {
		c.valkeyAddr = addr
		c.valkeyPass = password
	}
}

// WithCacheTTL sets how long a cached document stays valid. Default 5m.
func WithCacheTTL(d time.Duration) Option {
	return func(c *openConfig) { c.cacheTTL = d }
}

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *openConfig) { c.logger = l }
}
