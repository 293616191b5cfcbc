package chi

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kailas-cloud/cookbook/internal/domain/search/criteria"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// recipeQuery is the parsed query string of GET /recipes.
// Absent bounds are nil and fall back to the reset criteria.
type recipeQuery struct {
	Q           string   `validate:"max=200"`
	CaloriesMin *float64 `validate:"omitempty,gte=0"`
	CaloriesMax *float64 `validate:"omitempty,gte=0"`
	ProteinMin  *float64 `validate:"omitempty,gte=0"`
	ProteinMax  *float64 `validate:"omitempty,gte=0"`
	Tags        []string `validate:"max=32,dive,max=64"`
}

func parseRecipeQuery(values url.Values) (recipeQuery, error) {
	q := recipeQuery{
		Q:    values.Get("q"),
		Tags: parseTags(values["tag"]),
	}

	bounds := []struct {
		name string
		dst  **float64
	}{
		{"calories_min", &q.CaloriesMin},
		{"calories_max", &q.CaloriesMax},
		{"protein_min", &q.ProteinMin},
		{"protein_max", &q.ProteinMax},
	}
	for _, b := range bounds {
		v, err := parseBound(values, b.name)
		if err != nil {
			return recipeQuery{}, err
		}
		*b.dst = v
	}

	if err := validate.Struct(&q); err != nil {
		return recipeQuery{}, describeQueryError(err)
	}
	return q, nil
}

func parseBound(values url.Values, name string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return nil, nil //nolint:nilnil // absent bound
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%s must be a finite number, got %q", name, raw)
	}
	return &v, nil
}

// parseTags accepts repeated and comma-separated tag parameters.
func parseTags(raw []string) []string {
	var out []string
	for _, v := range raw {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

// criteria overlays the query on base.
func (q recipeQuery) criteria(base criteria.Criteria) criteria.Criteria {
	cal, prot := base.Calories(), base.Protein()
	if q.CaloriesMin != nil {
		cal.Min = *q.CaloriesMin
	}
	if q.CaloriesMax != nil {
		cal.Max = *q.CaloriesMax
	}
	if q.ProteinMin != nil {
		prot.Min = *q.ProteinMin
	}
	if q.ProteinMax != nil {
		prot.Max = *q.ProteinMax
	}
	return criteria.New(q.Q, cal, prot, q.Tags...)
}

var queryParamNames = map[string]string{
	"Q":           "q",
	"CaloriesMin": "calories_min",
	"CaloriesMax": "calories_max",
	"ProteinMin":  "protein_min",
	"ProteinMax":  "protein_max",
	"Tags":        "tag",
}

func describeQueryError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err //nolint:wrapcheck // already descriptive
	}
	fe := verrs[0]
	name, ok := queryParamNames[fe.Field()]
	if !ok {
		// dive errors report Tags[i]
		name = "tag"
	}
	switch fe.Tag() {
	case "gte":
		return fmt.Errorf("%s must be at least %s", name, fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Errorf("at most %s %s values are allowed", fe.Param(), name)
		}
		return fmt.Errorf("%s must be at most %s characters", name, fe.Param())
	default:
		return fmt.Errorf("%s is invalid", name)
	}
}
