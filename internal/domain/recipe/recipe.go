package recipe

import (
	"fmt"
	"math"
)

// Recipe is the recipe aggregate (immutable value object).
type Recipe struct {
	id          int
	name        string
	calories    float64
	protein     float64
	tags        []string
	ingredients []string
	utensils    []string
	procedure   []string
}

// New validates and creates a Recipe.
// ID must be positive, name non-empty, calories and protein finite and non-negative.
// Duplicate tags are dropped, keeping the first occurrence.
func New(
	id int, name string, calories, protein float64,
	tags, ingredients, utensils, procedure []string,
) (Recipe, error) {
	if id <= 0 {
		return Recipe{}, fmt.Errorf("recipe ID must be positive, got %d", id)
	}
	if name == "" {
		return Recipe{}, fmt.Errorf("recipe %d: name is required", id)
	}
	if err := checkAmount("calories", calories); err != nil {
		return Recipe{}, fmt.Errorf("recipe %d: %w", id, err)
	}
	if err := checkAmount("protein", protein); err != nil {
		return Recipe{}, fmt.Errorf("recipe %d: %w", id, err)
	}

	return Recipe{
		id:          id,
		name:        name,
		calories:    calories,
		protein:     protein,
		tags:        dedupe(tags),
		ingredients: cloneStrings(ingredients),
		utensils:    cloneStrings(utensils),
		procedure:   cloneStrings(procedure),
	}, nil
}

// Unchecked creates a Recipe without validation. It exists to evaluate
// filter predicates over records owned by a caller; it never enters a catalog.
func Unchecked(
	id int, name string, calories, protein float64,
	tags, ingredients, utensils, procedure []string,
) Recipe {
	return Recipe{
		id:          id,
		name:        name,
		calories:    calories,
		protein:     protein,
		tags:        dedupe(tags),
		ingredients: cloneStrings(ingredients),
		utensils:    cloneStrings(utensils),
		procedure:   cloneStrings(procedure),
	}
}

// MustNew is like New but panics on invalid input. Intended for fixtures.
func MustNew(
	id int, name string, calories, protein float64,
	tags, ingredients, utensils, procedure []string,
) Recipe {
	r, err := New(id, name, calories, protein, tags, ingredients, utensils, procedure)
	if err != nil {
		panic(err)
	}
	return r
}

// ID returns the recipe identifier.
func (r Recipe) ID() int { return r.id }

// Name returns the display name.
func (r Recipe) Name() string { return r.name }

// Calories returns the energy value in kcal.
func (r Recipe) Calories() float64 { return r.calories }

// Protein returns the protein amount in grams.
func (r Recipe) Protein() float64 { return r.protein }

// Tags returns the de-duplicated tags in insertion order.
func (r Recipe) Tags() []string { return cloneStrings(r.tags) }

// Ingredients returns the ingredient lines.
func (r Recipe) Ingredients() []string { return cloneStrings(r.ingredients) }

// Utensils returns the utensil lines.
func (r Recipe) Utensils() []string { return cloneStrings(r.utensils) }

// Procedure returns the ordered instruction steps.
func (r Recipe) Procedure() []string { return cloneStrings(r.procedure) }

// HasTag reports whether the recipe carries the exact tag.
func (r Recipe) HasTag(tag string) bool {
	for _, t := range r.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// EachTag calls fn for every tag without copying the slice.
// Iteration stops when fn returns false.
func (r Recipe) EachTag(fn func(tag string) bool) {
	for _, t := range r.tags {
		if !fn(t) {
			return
		}
	}
}

func checkAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be a finite number", field)
	}
	if v < 0 {
		return fmt.Errorf("%s must be non-negative, got %g", field, v)
	}
	return nil
}

func dedupe(tags []string) []string {
	if tags == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}
