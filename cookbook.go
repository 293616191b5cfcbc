package cookbook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	dbValkey "github.com/kailas-cloud/cookbook/internal/db/valkey"
	"github.com/kailas-cloud/cookbook/internal/domain/search/criteria"
	reciperepo "github.com/kailas-cloud/cookbook/internal/repository/recipe"
	"github.com/kailas-cloud/cookbook/internal/usecase/catalog"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultCacheTTL         = 5 * time.Minute
	defaultKeyPrefix        = "cookbook:"
)

// Catalog is a loaded recipe collection. It is safe for concurrent use.
type Catalog struct {
	svc   *catalog.Service
	store *dbValkey.Store
}

// Open loads a collection. Without a source option it loads the built-in sample.
func Open(ctx context.Context, opts ...Option) (*Catalog, error) {
	cfg := &openConfig{
		cacheTTL:  defaultCacheTTL,
		keyPrefix: defaultKeyPrefix,
		logger:    zap.NewNop(),
	}
	for _, o := range opts {
		o(cfg)
	}

	src, err := buildSource(cfg)
	if err != nil {
		return nil, err
	}

	c := &Catalog{}
	var catalogOpts []catalog.Option
	if cfg.valkeyAddr != "" {
		store, err := dbValkey.NewStore(dbValkey.Config{
			Addrs:      []string{cfg.valkeyAddr},
			Password:   cfg.valkeyPass,
			Standalone: true,
		})
		if err != nil {
			return nil, fmt.Errorf("cookbook: create valkey store: %w", err)
		}
		if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			store.Close()
			return nil, fmt.Errorf("cookbook: valkey not ready: %w", err)
		}
		cached := reciperepo.NewCachedSource(src, store, cfg.keyPrefix, cfg.cacheTTL, nil, cfg.logger)
		src = cached
		c.store = store
		catalogOpts = append(catalogOpts, catalog.WithCacheInvalidator(cached))
	}

	bounds := criteria.DefaultBounds()
	if cfg.bounds != nil {
		bounds = criteria.Bounds{
			Calories: criteria.NewRange(cfg.bounds.Calories.Min, cfg.bounds.Calories.Max),
			Protein:  criteria.NewRange(cfg.bounds.Protein.Min, cfg.bounds.Protein.Max),
		}
	}

	c.svc = catalog.New(reciperepo.NewLoader(src, cfg.logger), bounds, cfg.logger, catalogOpts...)
	if err := c.svc.Load(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("cookbook: %w", err)
	}
	return c, nil
}

func buildSource(cfg *openConfig) (reciperepo.Source, error) {
	set := 0
	for _, ok := range []bool{cfg.file != "", cfg.url != "", cfg.hasDocument} {
		if ok {
			set++
		}
	}
	if set > 1 {
		return nil, errors.New("cookbook: WithFile, WithURL and WithDocument are mutually exclusive")
	}

	switch {
	case cfg.file != "":
		return reciperepo.NewFileSource(cfg.file), nil
	case cfg.url != "":
		return reciperepo.NewHTTPSource(cfg.url, cfg.httpTimeout), nil
	case cfg.hasDocument:
		return reciperepo.NewStaticSource("document", cfg.document), nil
	default:
		return reciperepo.NewEmbeddedSource(), nil
	}
}

// Close releases the cache connection, if any.
func (c *Catalog) Close() {
	if c.store != nil {
		c.store.Close()
		c.store = nil
	}
}

// Filter returns the recipes matching crit in collection order.
func (c *Catalog) Filter(crit Criteria) ([]Recipe, error) {
	rs, err := c.svc.Filter(criteriaToDomain(crit))
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}
	return recipesFromDomain(rs), nil
}

// All returns the whole collection in document order.
func (c *Catalog) All() ([]Recipe, error) {
	rs, err := c.svc.All()
	if err != nil {
		return nil, fmt.Errorf("all: %w", err)
	}
	return recipesFromDomain(rs), nil
}

// Tags returns the sorted, de-duplicated tag index.
func (c *Catalog) Tags() ([]string, error) {
	tags, err := c.svc.Tags()
	if err != nil {
		return nil, fmt.Errorf("tags: %w", err)
	}
	return tags, nil
}

// Get returns the recipe with the given id, or ErrNotFound.
func (c *Catalog) Get(id int) (Recipe, error) {
	r, err := c.svc.Get(id)
	if err != nil {
		return Recipe{}, fmt.Errorf("get: %w", err)
	}
	return recipeFromDomain(r), nil
}

// Reset returns the criteria that match every recipe within the catalog bounds.
func (c *Catalog) Reset() Criteria {
	return criteriaFromDomain(c.svc.Reset())
}

// Reload fetches the collection again. On failure the current collection is kept.
func (c *Catalog) Reload(ctx context.Context) error {
	if err := c.svc.Reload(ctx); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	return nil
}
