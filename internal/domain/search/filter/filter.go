package filter

import (
	"strings"

	"github.com/kailas-cloud/cookbook/internal/domain/recipe"
	"github.com/kailas-cloud/cookbook/internal/domain/search/criteria"
)

// Apply returns the recipes that satisfy every active constraint in c,
// in their original relative order. The input slice is never modified.
// An inverted calorie or protein range matches nothing.
func Apply(collection []recipe.Recipe, c criteria.Criteria) []recipe.Recipe {
	idx := Indices(collection, c)
	out := make([]recipe.Recipe, len(idx))
	for i, j := range idx {
		out[i] = collection[j]
	}
	return out
}

// Indices returns the ascending positions of the recipes that Apply keeps.
func Indices(collection []recipe.Recipe, c criteria.Criteria) []int {
	out := make([]int, 0, len(collection))
	if c.Calories().IsInverted() || c.Protein().IsInverted() {
		return out
	}

	query := strings.ToLower(c.SearchText())
	for i, r := range collection {
		if matchText(r, query) &&
			MatchCalories(r, c.Calories()) &&
			MatchProtein(r, c.Protein()) &&
			MatchTags(r, c) {
			out = append(out, i)
		}
	}
	return out
}

// MatchText reports whether text is empty or a case-insensitive substring
// of the recipe name or of any of its tags.
func MatchText(r recipe.Recipe, text string) bool {
	return matchText(r, strings.ToLower(text))
}

// matchText expects an already lower-cased query.
func matchText(r recipe.Recipe, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Name()), query) {
		return true
	}
	found := false
	r.EachTag(func(tag string) bool {
		found = strings.Contains(strings.ToLower(tag), query)
		return !found
	})
	return found
}

// MatchCalories reports whether the recipe calories lie in rng, inclusive.
func MatchCalories(r recipe.Recipe, rng criteria.Range) bool {
	return rng.Contains(r.Calories())
}

// MatchProtein reports whether the recipe protein lies in rng, inclusive.
func MatchProtein(r recipe.Recipe, rng criteria.Range) bool {
	return rng.Contains(r.Protein())
}

// MatchTags reports whether no tag is selected or the recipe carries
// at least one of the selected tags.
func MatchTags(r recipe.Recipe, c criteria.Criteria) bool {
	if !c.HasTagConstraint() {
		return true
	}
	found := false
	r.EachTag(func(tag string) bool {
		found = c.IsSelected(tag)
		return !found
	})
	return found
}
