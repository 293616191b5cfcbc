package chi

import (
	"context"

	"github.com/kailas-cloud/cookbook/internal/domain/recipe"
	"github.com/kailas-cloud/cookbook/internal/domain/search/criteria"
)

// Catalog is the read side of the recipe catalog plus reload.
type Catalog interface {
	Filter(c criteria.Criteria) ([]recipe.Recipe, error)
	Tags() ([]string, error)
	Get(id int) (recipe.Recipe, error)
	All() ([]recipe.Recipe, error)
	Reset() criteria.Criteria
	Reload(ctx context.Context) error
}
