package cookbook

import "github.com/kailas-cloud/cookbook/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound      = domain.ErrNotFound
	ErrLoad          = domain.ErrLoad
	ErrInvalidRecipe = domain.ErrInvalidRecipe
	ErrNotLoaded     = domain.ErrNotLoaded
)

// LoadError is returned by Open and Reload when the collection cannot be loaded.
type LoadError = domain.LoadError
