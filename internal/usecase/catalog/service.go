// Package catalog holds the loaded recipe collection and answers queries against it.
package catalog

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cookbook/internal/domain"
	"github.com/kailas-cloud/cookbook/internal/domain/recipe"
	"github.com/kailas-cloud/cookbook/internal/domain/search/criteria"
	"github.com/kailas-cloud/cookbook/internal/domain/search/filter"
	"github.com/kailas-cloud/cookbook/internal/metrics"
)

// snapshot is one immutable generation of the collection.
type snapshot struct {
	recipes  []recipe.Recipe
	tags     []string
	byID     map[int]int
	loadedAt time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithCacheInvalidator makes Reload drop the cached source document first.
func WithCacheInvalidator(inv CacheInvalidator) Option {
	return func(s *Service) { s.invalidator = inv }
}

// Service serves queries from the most recent successfully loaded collection.
// Readers never block; a failed load leaves the previous collection in place.
type Service struct {
	loader      RecipeLoader
	invalidator CacheInvalidator
	bounds      criteria.Bounds
	logger      *zap.Logger
	current     atomic.Pointer[snapshot]
	now         func() time.Time
}

// New creates a catalog. Nothing is loaded until Load is called.
func New(loader RecipeLoader, bounds criteria.Bounds, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		loader: loader,
		bounds: bounds,
		logger: logger,
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load fetches the collection and publishes it.
func (s *Service) Load(ctx context.Context) error {
	start := time.Now()
	recipes, err := s.loader.Load(ctx)
	metrics.CatalogLoadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CatalogLoadsTotal.WithLabelValues("error").Inc()
		s.logger.Error("Recipe collection load failed",
			zap.Bool("serving_previous", s.current.Load() != nil),
			zap.Error(err),
		)
		return fmt.Errorf("load catalog: %w", err)
	}

	snap := build(recipes, s.now())
	s.current.Store(snap)

	metrics.CatalogLoadsTotal.WithLabelValues("ok").Inc()
	metrics.CatalogRecipes.Set(float64(len(snap.recipes)))
	s.logger.Info("Recipe collection loaded",
		zap.Int("recipes", len(snap.recipes)),
		zap.Int("tags", len(snap.tags)),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// Reload invalidates the source cache (when configured) and loads again.
func (s *Service) Reload(ctx context.Context) error {
	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx); err != nil {
			s.logger.Warn("Source cache invalidation failed", zap.Error(err))
		}
	}
	return s.Load(ctx)
}

func build(recipes []recipe.Recipe, at time.Time) *snapshot {
	byID := make(map[int]int, len(recipes))
	for i, r := range recipes {
		byID[r.ID()] = i
	}
	return &snapshot{
		recipes:  slices.Clone(recipes),
		tags:     filter.ExtractTagIndex(recipes),
		byID:     byID,
		loadedAt: at,
	}
}

func (s *Service) snapshot() (*snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, domain.ErrNotLoaded
	}
	return snap, nil
}

// Filter returns the recipes matching c in collection order.
func (s *Service) Filter(c criteria.Criteria) ([]recipe.Recipe, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	metrics.CatalogFiltersTotal.Inc()
	return filter.Apply(snap.recipes, c), nil
}

// Tags returns the sorted tag index of the loaded collection.
func (s *Service) Tags() ([]string, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return slices.Clone(snap.tags), nil
}

// Get looks a recipe up by id.
func (s *Service) Get(id int) (recipe.Recipe, error) {
	snap, err := s.snapshot()
	if err != nil {
		return recipe.Recipe{}, err
	}
	i, ok := snap.byID[id]
	if !ok {
		return recipe.Recipe{}, fmt.Errorf("recipe %d: %w", id, domain.ErrNotFound)
	}
	return snap.recipes[i], nil
}

// All returns the whole collection in document order.
func (s *Service) All() ([]recipe.Recipe, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return slices.Clone(snap.recipes), nil
}

// Reset returns the criteria that match every recipe within the configured bounds.
func (s *Service) Reset() criteria.Criteria {
	return criteria.Reset(s.bounds)
}

// Bounds returns the configured filter bounds.
func (s *Service) Bounds() criteria.Bounds { return s.bounds }

// LoadedAt reports when the current collection was published.
func (s *Service) LoadedAt() (time.Time, bool) {
	snap := s.current.Load()
	if snap == nil {
		return time.Time{}, false
	}
	return snap.loadedAt, true
}

// Ready reports whether a collection is available.
func (s *Service) Ready(_ context.Context) error {
	_, err := s.snapshot()
	return err
}
