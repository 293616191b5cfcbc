// Package cookbook loads a static recipe collection and filters it by free text,
// calorie and protein ranges, and tags.
//
// # Catalog API
//
//	cat, _ := cookbook.Open(ctx, cookbook.WithFile("recipes.json"))
//	defer cat.Close()
//	c := cat.Reset()
//	c.SearchText = "curry"
//	c.SelectedTags = []string{"spicy"}
//	recipes, _ := cat.Filter(c)
//
// # Pure engine
//
//	matches := cookbook.Filter(recipes, cookbook.DefaultCriteria())
//	tags := cookbook.ExtractTagIndex(recipes)
//
// Filtering is an AND across facets. Text matches case-insensitively on the
// name or any tag; ranges are inclusive; selected tags match when the recipe
// carries at least one of them.
package cookbook
