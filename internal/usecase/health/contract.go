package health

import "context"

// CatalogChecker reports whether a recipe collection is loaded.
type CatalogChecker interface {
	Ready(ctx context.Context) error
}

// CachePinger checks source cache availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}
