package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Catalog Prometheus metrics.
var (
	CatalogLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_loads_total",
			Help:      "Total number of recipe collection loads",
		},
		[]string{"status"}, // "ok" / "error"
	)

	CatalogLoadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_load_duration_seconds",
			Help:      "Recipe collection load duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.025, 0.1, 0.5, 1, 2.5, 10},
		},
	)

	CatalogRecipes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_recipes",
			Help:      "Number of recipes in the loaded collection",
		},
	)

	CatalogFiltersTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_filters_total",
			Help:      "Total number of filter evaluations",
		},
	)

	SourceCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_cache_total",
			Help:      "Recipe document cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var registerCatalog sync.Once

// RegisterCatalogMetrics registers catalog metrics with the default registry.
// Safe to call more than once.
func RegisterCatalogMetrics() {
	registerCatalog.Do(func() {
		prometheus.MustRegister(
			CatalogLoadsTotal,
			CatalogLoadDuration,
			CatalogRecipes,
			CatalogFiltersTotal,
			SourceCacheTotal,
		)
	})
}
