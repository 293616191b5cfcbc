package criteria

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRange_Contains(t *testing.T) {
	r := NewRange(100, 500)
	tests := []struct {
		v    float64
		want bool
	}{
		{99.9, false},
		{100, true},
		{300, true},
		{500, true},
		{500.1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.v); got != tt.want {
			t.Errorf("Contains(%g) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestRange_Inverted(t *testing.T) {
	r := NewRange(500, 100)
	if !r.IsInverted() {
		t.Error("IsInverted() = false for [500, 100]")
	}
	for _, v := range []float64{0, 100, 300, 500, 1000} {
		if r.Contains(v) {
			t.Errorf("inverted range contains %g", v)
		}
	}
}

func TestRange_SinglePoint(t *testing.T) {
	r := NewRange(250, 250)
	if r.IsInverted() {
		t.Error("single point range is not inverted")
	}
	if !r.Contains(250) {
		t.Error("single point range must contain its bound")
	}
}

func TestDefaultBounds(t *testing.T) {
	b := DefaultBounds()
	if b.Calories != (Range{Min: 0, Max: 1000}) {
		t.Errorf("Calories = %+v", b.Calories)
	}
	if b.Protein != (Range{Min: 0, Max: 100}) {
		t.Errorf("Protein = %+v", b.Protein)
	}
}

func TestReset(t *testing.T) {
	b := Bounds{Calories: NewRange(0, 2000), Protein: NewRange(0, 250)}
	c := Reset(b)

	if c.SearchText() != "" {
		t.Errorf("SearchText() = %q", c.SearchText())
	}
	if c.Calories() != b.Calories || c.Protein() != b.Protein {
		t.Errorf("ranges = %+v / %+v", c.Calories(), c.Protein())
	}
	if c.HasTagConstraint() {
		t.Error("reset criteria must not constrain tags")
	}
	if len(c.SelectedTags()) != 0 {
		t.Errorf("SelectedTags() = %v", c.SelectedTags())
	}
}

func TestNew_TagSet(t *testing.T) {
	c := New("", DefaultBounds().Calories, DefaultBounds().Protein, "sweet", "rice", "sweet", "")
	if diff := cmp.Diff([]string{"rice", "sweet"}, c.SelectedTags()); diff != "" {
		t.Errorf("SelectedTags() mismatch (-want +got):\n%s", diff)
	}
	if !c.IsSelected("rice") || c.IsSelected("") {
		t.Error("IsSelected mismatch")
	}
}

func TestWithers_DoNotMutateReceiver(t *testing.T) {
	base := Reset(DefaultBounds())

	c := base.WithSearchText("salad").
		WithCalories(NewRange(100, 300)).
		WithProtein(NewRange(5, 10)).
		WithTags("healthy")

	if base.SearchText() != "" || base.HasTagConstraint() {
		t.Error("withers mutated the receiver")
	}
	if base.Calories() != DefaultBounds().Calories {
		t.Error("WithCalories mutated the receiver")
	}
	if c.SearchText() != "salad" || !c.IsSelected("healthy") {
		t.Errorf("unexpected criteria: %+v", c)
	}
	if c.Calories() != NewRange(100, 300) || c.Protein() != NewRange(5, 10) {
		t.Errorf("ranges = %+v / %+v", c.Calories(), c.Protein())
	}

	cleared := c.WithTags()
	if cleared.HasTagConstraint() {
		t.Error("WithTags() with no args must clear the selection")
	}
	if !c.IsSelected("healthy") {
		t.Error("WithTags mutated the receiver")
	}
}
