package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing recipe.
	ErrNotFound = errors.New("recipe not found")
	// ErrLoad signals that the recipe collection could not be fetched or decoded.
	ErrLoad = errors.New("recipe collection load failed")
	// ErrInvalidRecipe signals a record that violates the recipe invariants.
	ErrInvalidRecipe = errors.New("invalid recipe")
	// ErrNotLoaded signals that no recipe collection is available yet.
	ErrNotLoaded = errors.New("recipe collection not loaded")
)

// LoadError wraps ErrLoad with the failing source and the underlying cause.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s: %v", ErrLoad.Error(), e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", ErrLoad.Error(), e.Source, e.Err)
}

// Unwrap exposes both the ErrLoad sentinel and the cause to errors.Is/As.
func (e *LoadError) Unwrap() []error { return []error{ErrLoad, e.Err} }

// NewLoadError creates a load error for the given source.
func NewLoadError(source string, err error) error {
	return &LoadError{Source: source, Err: err}
}
