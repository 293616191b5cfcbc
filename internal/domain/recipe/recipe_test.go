package recipe

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew_Valid(t *testing.T) {
	r, err := New(1, "Veg Biryani", 600, 15,
		[]string{"spicy", "rice"},
		[]string{"1 cup basmati rice"},
		[]string{"pot"},
		[]string{"Soak the rice", "Cook the rice"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID() != 1 {
		t.Errorf("ID() = %d", r.ID())
	}
	if r.Name() != "Veg Biryani" {
		t.Errorf("Name() = %q", r.Name())
	}
	if r.Calories() != 600 || r.Protein() != 15 {
		t.Errorf("Calories()/Protein() = %g/%g", r.Calories(), r.Protein())
	}
	if diff := cmp.Diff([]string{"Soak the rice", "Cook the rice"}, r.Procedure()); diff != "" {
		t.Errorf("Procedure() mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		recName  string
		calories float64
		protein  float64
		wantErr  string
	}{
		{"zero id", 0, "x", 1, 1, "must be positive"},
		{"negative id", -3, "x", 1, 1, "must be positive"},
		{"empty name", 1, "", 1, 1, "name is required"},
		{"negative calories", 1, "x", -1, 1, "calories must be non-negative"},
		{"negative protein", 1, "x", 1, -0.5, "protein must be non-negative"},
		{"nan calories", 1, "x", math.NaN(), 1, "calories must be a finite number"},
		{"inf protein", 1, "x", 1, math.Inf(1), "protein must be a finite number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.id, tt.recName, tt.calories, tt.protein, nil, nil, nil, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestNew_ZeroAmountsAllowed(t *testing.T) {
	if _, err := New(7, "Water", 0, 0, nil, nil, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNew_DedupesTagsKeepingOrder(t *testing.T) {
	r := MustNew(1, "x", 1, 1, []string{"spicy", "rice", "spicy", "hot", "rice"}, nil, nil, nil)
	if diff := cmp.Diff([]string{"spicy", "rice", "hot"}, r.Tags()); diff != "" {
		t.Errorf("Tags() mismatch (-want +got):\n%s", diff)
	}
}

func TestRecipe_IsImmutable(t *testing.T) {
	tags := []string{"a", "b"}
	steps := []string{"one", "two"}
	r := MustNew(1, "x", 1, 1, tags, nil, nil, steps)

	tags[0] = "mutated"
	steps[0] = "mutated"
	if r.Tags()[0] != "a" {
		t.Error("recipe shares tag storage with the caller")
	}
	if r.Procedure()[0] != "one" {
		t.Error("recipe shares procedure storage with the caller")
	}

	got := r.Tags()
	got[1] = "mutated"
	if r.Tags()[1] != "b" {
		t.Error("Tags() leaks internal storage")
	}
}

func TestRecipe_HasTag(t *testing.T) {
	r := MustNew(1, "x", 1, 1, []string{"spicy", "rice"}, nil, nil, nil)
	if !r.HasTag("rice") {
		t.Error("HasTag(rice) = false")
	}
	if r.HasTag("Rice") {
		t.Error("HasTag is exact, Rice must not match")
	}
}

func TestRecipe_EachTagStops(t *testing.T) {
	r := MustNew(1, "x", 1, 1, []string{"a", "b", "c"}, nil, nil, nil)
	var seen []string
	r.EachTag(func(tag string) bool {
		seen = append(seen, tag)
		return tag != "b"
	})
	if diff := cmp.Diff([]string{"a", "b"}, seen); diff != "" {
		t.Errorf("EachTag mismatch (-want +got):\n%s", diff)
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustNew(0, "", 0, 0, nil, nil, nil, nil)
}

func TestUnchecked_SkipsValidation(t *testing.T) {
	r := Unchecked(0, "", -5, 3, []string{"snack", "snack", ""}, nil, nil, nil)
	if r.ID() != 0 || r.Name() != "" || r.Calories() != -5 {
		t.Errorf("fields = %d %q %g", r.ID(), r.Name(), r.Calories())
	}
	if diff := cmp.Diff([]string{"snack", ""}, r.Tags()); diff != "" {
		t.Errorf("Tags() mismatch (-want +got):\n%s", diff)
	}
}

func TestTagColor(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"spicy", "red"},
		{"vegetarian", "green"},
		{"dessert", "purple"},
		{"unknown-tag", DefaultTagColor},
		{"", DefaultTagColor},
	}
	for _, tt := range tests {
		if got := TagColor(tt.tag); got != tt.want {
			t.Errorf("TagColor(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}
