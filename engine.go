package cookbook

import (
	"github.com/kailas-cloud/cookbook/internal/domain/recipe"
	"github.com/kailas-cloud/cookbook/internal/domain/search/filter"
)

// Filter returns the recipes matching c as an ordered subsequence of recipes.
// Matched elements are returned as copies of the caller's records, unchanged.
// Records are not validated: filtering has no error conditions.
func Filter(recipes []Recipe, c Criteria) []Recipe {
	idx := filter.Indices(toDomainAll(recipes), criteriaToDomain(c))
	out := make([]Recipe, len(idx))
	for i, j := range idx {
		out[i] = recipes[j].clone()
	}
	return out
}

// ExtractTagIndex returns every distinct tag in recipes, sorted.
func ExtractTagIndex(recipes []Recipe) []string {
	return filter.ExtractTagIndex(toDomainAll(recipes))
}

func toDomainAll(recipes []Recipe) []recipe.Recipe {
	out := make([]recipe.Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = recipe.Unchecked(r.ID, r.Name, r.Calories, r.Protein, r.Tags, nil, nil, nil)
	}
	return out
}
