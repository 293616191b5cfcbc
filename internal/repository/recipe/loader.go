// Package recipe loads the recipe collection from its static JSON document.
package recipe

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cookbook/internal/domain"
	domrecipe "github.com/kailas-cloud/cookbook/internal/domain/recipe"
)

// Loader fetches, decodes and validates the recipe collection.
type Loader struct {
	src    Source
	logger *zap.Logger
}

// NewLoader creates a loader over src.
func NewLoader(src Source, logger *zap.Logger) *Loader {
	return &Loader{src: src, logger: logger}
}

// Source returns the underlying source.
func (l *Loader) Source() Source { return l.src }

// Load returns the full collection in document order.
// Every failure is a *domain.LoadError; a partial collection is never returned.
func (l *Loader) Load(ctx context.Context) ([]domrecipe.Recipe, error) {
	data, err := l.src.Fetch(ctx)
	if err != nil {
		return nil, domain.NewLoadError(l.src.Name(), err)
	}

	recipes, err := Decode(data)
	if err != nil {
		return nil, domain.NewLoadError(l.src.Name(), err)
	}

	l.logger.Debug("recipe document loaded",
		zap.String("source", l.src.Name()),
		zap.Int("bytes", len(data)),
		zap.Int("recipes", len(recipes)),
	)
	return recipes, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode parses a recipe document: a JSON array of recipe objects.
// Records are validated individually and ids must be unique.
func Decode(data []byte) ([]domrecipe.Recipe, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New("recipe document must be a JSON array")
	}

	var dtos []recipeDTO
	if err := json.Unmarshal(trimmed, &dtos); err != nil {
		return nil, fmt.Errorf("decode recipe document: %w", err)
	}

	out := make([]domrecipe.Recipe, 0, len(dtos))
	seen := make(map[int]int, len(dtos))
	for i := range dtos {
		d := &dtos[i]
		if err := validate.Struct(d); err != nil {
			return nil, fmt.Errorf("%w: element %d: %s", domain.ErrInvalidRecipe, i, describeValidation(err))
		}
		if prev, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("%w: element %d: duplicate id %d (first at element %d)",
				domain.ErrInvalidRecipe, i, d.ID, prev)
		}
		seen[d.ID] = i

		r, err := d.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", domain.ErrInvalidRecipe, i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// Encode renders recipes in the document shape.
func Encode(recipes []domrecipe.Recipe) ([]byte, error) {
	dtos := make([]recipeDTO, len(recipes))
	for i, r := range recipes {
		dtos[i] = fromDomain(r)
	}
	data, err := json.MarshalIndent(dtos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode recipe document: %w", err)
	}
	return data, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
	}
}
