package domain

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestLoadError_IsLoadAndCause(t *testing.T) {
	err := NewLoadError("file:recipes.json", fs.ErrNotExist)

	if !errors.Is(err, ErrLoad) {
		t.Error("expected errors.Is(err, ErrLoad)")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected errors.Is(err, fs.ErrNotExist)")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("load error must not match ErrNotFound")
	}

	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatal("expected errors.As to *LoadError")
	}
	if le.Source != "file:recipes.json" {
		t.Errorf("Source = %q", le.Source)
	}
}

func TestLoadError_Message(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"with source", "url:http://x/recipes.json", "recipe collection load failed (url:http://x/recipes.json): boom"},
		{"without source", "", "recipe collection load failed: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewLoadError(tt.source, errors.New("boom"))
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestLoadError_WrapsInvalidRecipe(t *testing.T) {
	err := NewLoadError("embedded", errors.Join(ErrInvalidRecipe, errors.New("name is required")))
	if !errors.Is(err, ErrInvalidRecipe) {
		t.Error("expected ErrInvalidRecipe to be reachable")
	}
	if !strings.Contains(err.Error(), "name is required") {
		t.Errorf("error = %q", err)
	}
}
