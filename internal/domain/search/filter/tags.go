package filter

import (
	"sort"

	"github.com/kailas-cloud/cookbook/internal/domain/recipe"
)

// ExtractTagIndex returns every distinct tag in the collection, sorted ascending.
func ExtractTagIndex(collection []recipe.Recipe) []string {
	set := make(map[string]struct{})
	for _, r := range collection {
		r.EachTag(func(tag string) bool {
			set[tag] = struct{}{}
			return true
		})
	}

	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
