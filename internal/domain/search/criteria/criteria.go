package criteria

import "sort"

// Range is a closed numeric interval [Min, Max].
// A range with Min > Max is inverted and contains nothing.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// NewRange creates a Range. No validation: inverted bounds are a legal, empty interval.
func NewRange(lo, hi float64) Range {
	return Range{Min: lo, Max: hi}
}

// Contains reports whether v lies within the interval, both ends inclusive.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// IsInverted reports whether Min > Max.
func (r Range) IsInverted() bool { return r.Min > r.Max }

// Bounds holds the outermost calorie and protein ranges used by Reset.
type Bounds struct {
	Calories Range
	Protein  Range
}

// DefaultBounds returns calories [0, 1000] and protein [0, 100].
func DefaultBounds() Bounds {
	return Bounds{
		Calories: Range{Min: 0, Max: 1000},
		Protein:  Range{Min: 0, Max: 100},
	}
}

// Criteria is the filter state: search text, numeric ranges and selected tags.
type Criteria struct {
	searchText   string
	calories     Range
	protein      Range
	selectedTags map[string]struct{}
}

// New creates Criteria. Duplicate and empty tags are ignored.
func New(searchText string, calories, protein Range, selectedTags ...string) Criteria {
	return Criteria{
		searchText:   searchText,
		calories:     calories,
		protein:      protein,
		selectedTags: toSet(selectedTags),
	}
}

// Reset returns the "no filter" criteria for the given bounds:
// empty text, full ranges, no selected tags.
func Reset(b Bounds) Criteria {
	return New("", b.Calories, b.Protein)
}

// SearchText returns the free-text query.
func (c Criteria) SearchText() string { return c.searchText }

// Calories returns the calorie range.
func (c Criteria) Calories() Range { return c.calories }

// Protein returns the protein range.
func (c Criteria) Protein() Range { return c.protein }

// HasTagConstraint reports whether at least one tag is selected.
func (c Criteria) HasTagConstraint() bool { return len(c.selectedTags) > 0 }

// IsSelected reports whether tag is in the selection.
func (c Criteria) IsSelected(tag string) bool {
	_, ok := c.selectedTags[tag]
	return ok
}

// SelectedTags returns the selected tags sorted ascending.
func (c Criteria) SelectedTags() []string {
	out := make([]string, 0, len(c.selectedTags))
	for t := range c.selectedTags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// WithSearchText returns a copy with the search text replaced.
func (c Criteria) WithSearchText(text string) Criteria {
	c.searchText = text
	return c
}

// WithCalories returns a copy with the calorie range replaced.
func (c Criteria) WithCalories(r Range) Criteria {
	c.calories = r
	return c
}

// WithProtein returns a copy with the protein range replaced.
func (c Criteria) WithProtein(r Range) Criteria {
	c.protein = r
	return c
}

// WithTags returns a copy whose selection is exactly tags.
func (c Criteria) WithTags(tags ...string) Criteria {
	c.selectedTags = toSet(tags)
	return c
}

func toSet(tags []string) map[string]struct{} {
	if len(tags) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		set[t] = struct{}{}
	}
	return set
}
