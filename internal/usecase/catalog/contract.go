package catalog

import (
	"context"

	"github.com/kailas-cloud/cookbook/internal/domain/recipe"
)

// RecipeLoader produces the full recipe collection.
type RecipeLoader interface {
	Load(ctx context.Context) ([]recipe.Recipe, error)
}

// CacheInvalidator drops a cached copy of the source document.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}
