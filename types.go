package cookbook

import (
	"slices"

	"github.com/kailas-cloud/cookbook/internal/domain/recipe"
	"github.com/kailas-cloud/cookbook/internal/domain/search/criteria"
)

// Range is an inclusive numeric interval. Min > Max matches nothing.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Recipe is one entry of the collection.
type Recipe struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Tags        []string `json:"tags"`
	Ingredients []string `json:"ingredients"`
	Utensils    []string `json:"utensils"`
	Procedure   []string `json:"procedure"`
}

// Criteria is the filter state. The zero value matches only recipes with
// zero calories and protein; start from DefaultCriteria or Catalog.Reset.
type Criteria struct {
	SearchText   string   `json:"q"`
	Calories     Range    `json:"calories"`
	Protein      Range    `json:"protein"`
	SelectedTags []string `json:"tags"`
}

// DefaultCriteria matches every recipe within calories [0, 1000] and protein [0, 100].
func DefaultCriteria() Criteria {
	return criteriaFromDomain(criteria.Reset(criteria.DefaultBounds()))
}

// TagColor returns the display color for a tag, "gray" when it has none.
func TagColor(tag string) string {
	return recipe.TagColor(tag)
}

func recipeFromDomain(r recipe.Recipe) Recipe {
	return Recipe{
		ID:          r.ID(),
		Name:        r.Name(),
		Calories:    r.Calories(),
		Protein:     r.Protein(),
		Tags:        r.Tags(),
		Ingredients: r.Ingredients(),
		Utensils:    r.Utensils(),
		Procedure:   r.Procedure(),
	}
}

func recipesFromDomain(rs []recipe.Recipe) []Recipe {
	out := make([]Recipe, len(rs))
	for i, r := range rs {
		out[i] = recipeFromDomain(r)
	}
	return out
}

func (r Recipe) clone() Recipe {
	r.Tags = slices.Clone(r.Tags)
	r.Ingredients = slices.Clone(r.Ingredients)
	r.Utensils = slices.Clone(r.Utensils)
	r.Procedure = slices.Clone(r.Procedure)
	return r
}

func criteriaToDomain(c Criteria) criteria.Criteria {
	return criteria.New(
		c.SearchText,
		criteria.NewRange(c.Calories.Min, c.Calories.Max),
		criteria.NewRange(c.Protein.Min, c.Protein.Max),
		c.SelectedTags...,
	)
}

func criteriaFromDomain(c criteria.Criteria) Criteria {
	return Criteria{
		SearchText:   c.SearchText(),
		Calories:     Range{Min: c.Calories().Min, Max: c.Calories().Max},
		Protein:      Range{Min: c.Protein().Min, Max: c.Protein().Max},
		SelectedTags: c.SelectedTags(),
	}
}
